package api

import "time"

type ErrorResponse struct {
	Message   string    `json:"message"`
	RequestId string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`
}

type ValidationError struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type ValidationErrorResponse struct {
	Message          string            `json:"message"`
	RequestId        string            `json:"request_id"`
	Timestamp        time.Time         `json:"timestamp"`
	ValidationErrors []ValidationError `json:"validation_errors"`
}

type SystemInfo struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

type HealthcheckResponse struct {
	Status     string     `json:"status"`
	SystemInfo SystemInfo `json:"system_info"`
}

type Metadata struct {
	CurrentPage  int `json:"current_page"`
	FirstPage    int `json:"first_page"`
	LastPage     int `json:"last_page"`
	PageSize     int `json:"page_size"`
	TotalRecords int `json:"total_records"`
}

type Genre struct {
	Id   int    `json:"id"`
	Name string `json:"name"`
}

type GenreRequest struct {
	Name string `json:"name" validate:"notblank,max=255"`
}

type Actor struct {
	Id        int    `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	FullName  string `json:"full_name"`
}

type ActorRequest struct {
	FirstName string `json:"first_name" validate:"notblank,max=255"`
	LastName  string `json:"last_name" validate:"notblank,max=255"`
}

type CinemaHall struct {
	Id         int    `json:"id"`
	Name       string `json:"name"`
	Rows       int    `json:"rows"`
	SeatsInRow int    `json:"seats_in_row"`
	Capacity   int    `json:"capacity"`
}

type CinemaHallRequest struct {
	Name       string `json:"name" validate:"notblank,max=255"`
	Rows       int    `json:"rows" validate:"min=1"`
	SeatsInRow int    `json:"seats_in_row" validate:"min=1"`
}

type MovieSummary struct {
	Id          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Duration    int      `json:"duration"`
	Genres      []string `json:"genres"`
	Actors      []string `json:"actors"`
}

type MovieDetail struct {
	Id          int     `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Duration    int     `json:"duration"`
	Genres      []Genre `json:"genres"`
	Actors      []Actor `json:"actors"`
}

type MovieRequest struct {
	Title       string `json:"title" validate:"notblank,max=255"`
	Description string `json:"description"`
	Duration    int    `json:"duration" validate:"min=1"`
	Genres      []int  `json:"genres" validate:"unique,dive,min=1"`
	Actors      []int  `json:"actors" validate:"unique,dive,min=1"`
}

type MovieSessionSummary struct {
	Id                 int       `json:"id"`
	ShowTime           time.Time `json:"show_time"`
	MovieTitle         string    `json:"movie_title"`
	CinemaHallName     string    `json:"cinema_hall_name"`
	CinemaHallCapacity int       `json:"cinema_hall_capacity"`
	TicketsAvailable   int       `json:"tickets_available"`
}

type Place struct {
	Row  int `json:"row"`
	Seat int `json:"seat"`
}

type MovieSessionDetail struct {
	Id          int          `json:"id"`
	ShowTime    time.Time    `json:"show_time"`
	Movie       MovieSummary `json:"movie"`
	CinemaHall  CinemaHall   `json:"cinema_hall"`
	TakenPlaces []Place      `json:"taken_places"`
}

type MovieSessionRequest struct {
	ShowTime   time.Time `json:"show_time" validate:"required"`
	Movie      int       `json:"movie" validate:"min=1"`
	CinemaHall int       `json:"cinema_hall" validate:"min=1"`
}

type TicketSession struct {
	Id                 int       `json:"id"`
	ShowTime           time.Time `json:"show_time"`
	MovieTitle         string    `json:"movie_title"`
	CinemaHallName     string    `json:"cinema_hall_name"`
	CinemaHallCapacity int       `json:"cinema_hall_capacity"`
}

type Ticket struct {
	Id           int           `json:"id"`
	Row          int           `json:"row"`
	Seat         int           `json:"seat"`
	MovieSession TicketSession `json:"movie_session"`
	Order        *int          `json:"order,omitempty"`
}

type TicketRequest struct {
	Row          int `json:"row" validate:"min=1"`
	Seat         int `json:"seat" validate:"min=1"`
	MovieSession int `json:"movie_session" validate:"min=1"`
}

type Order struct {
	Id        int       `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Tickets   []Ticket  `json:"tickets"`
}

type OrderRequest struct {
	Tickets []TicketRequest `json:"tickets" validate:"min=1,dive"`
}

type OrderListResponse struct {
	Orders   []Order  `json:"orders"`
	Metadata Metadata `json:"metadata"`
}

type TicketListResponse struct {
	Tickets  []Ticket `json:"tickets"`
	Metadata Metadata `json:"metadata"`
}

// ListMoviesParams defines parameters for ListMovies.
type ListMoviesParams struct {
	Title  *string `form:"title,omitempty" json:"title,omitempty"`
	Genres *string `form:"genres,omitempty" json:"genres,omitempty"`
	Actors *string `form:"actors,omitempty" json:"actors,omitempty"`
}

// ListMovieSessionsParams defines parameters for ListMovieSessions.
type ListMovieSessionsParams struct {
	Movie *string `form:"movie,omitempty" json:"movie,omitempty"`
	Date  *string `form:"date,omitempty" json:"date,omitempty"`
}

// PageParams defines the page parameter of paginated listings.
type PageParams struct {
	Page *int `form:"page,omitempty" json:"page,omitempty" validate:"omitempty,min=1"`
}
