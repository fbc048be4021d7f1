package repository

import (
	"strconv"
	"strings"
	"time"
)

// condition is a single SQL boolean expression. Its arguments are referenced
// with '?' placeholders that whereClause renumbers into pgx positional
// parameters.
type condition struct {
	clause string
	args   []any
}

// whereClause joins the conditions with AND and returns the WHERE clause
// together with its arguments. It returns an empty clause when no conditions
// are given.
func whereClause(conds ...condition) (string, []any) {
	if len(conds) == 0 {
		return "", nil
	}

	var sb strings.Builder
	args := make([]any, 0, len(conds))

	sb.WriteString("WHERE ")

	for i, c := range conds {
		if i > 0 {
			sb.WriteString(" AND ")
		}

		sb.WriteByte('(')

		next := 0
		for _, ch := range c.clause {
			if ch != '?' {
				sb.WriteRune(ch)
				continue
			}

			args = append(args, c.args[next])
			next++

			sb.WriteByte('$')
			sb.WriteString(strconv.Itoa(len(args)))
		}

		sb.WriteByte(')')
	}

	return sb.String(), args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes s match literally inside a LIKE pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func titleContains(title string) condition {
	return condition{
		clause: "m.title ILIKE ?",
		args:   []any{"%" + escapeLike(title) + "%"},
	}
}

func hasAnyGenre(ids []int) condition {
	return condition{
		clause: "EXISTS (SELECT 1 FROM movie_genres mg WHERE mg.movie_id = m.id AND mg.genre_id = ANY(?))",
		args:   []any{ids},
	}
}

func hasAnyActor(ids []int) condition {
	return condition{
		clause: "EXISTS (SELECT 1 FROM movie_actors ma WHERE ma.movie_id = m.id AND ma.actor_id = ANY(?))",
		args:   []any{ids},
	}
}

func sessionOfMovie(movieID int) condition {
	return condition{
		clause: "ms.movie_id = ?",
		args:   []any{movieID},
	}
}

func sessionShownOn(date time.Time) condition {
	return condition{
		clause: "ms.show_time::date = ?::date",
		args:   []any{date.Format(time.DateOnly)},
	}
}
