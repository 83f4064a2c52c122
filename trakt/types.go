package trakt

// HistoryItem is one raw watch event as returned by the
// /users/{id}/history endpoint. Exactly one of Movie or Episode is set,
// per the Type discriminator; Show accompanies episodes.
type HistoryItem struct {
	ID        int64    `json:"id"`
	WatchedAt string   `json:"watched_at"`
	Action    string   `json:"action"`
	Type      string   `json:"type"`
	Movie     *Movie   `json:"movie,omitempty"`
	Episode   *Episode `json:"episode,omitempty"`
	Show      *Show    `json:"show,omitempty"`
	Rating    int      `json:"-"` // merged from /ratings, 0 when unrated
}

// Movie holds the movie fields of a history item.
type Movie struct {
	Title string `json:"title"`
	Year  int    `json:"year"`
	IDs   IDs    `json:"ids"`
}

// Episode holds the episode fields of a history item.
type Episode struct {
	Season int    `json:"season"`
	Number int    `json:"number"`
	Title  string `json:"title"`
	IDs    IDs    `json:"ids"`
}

// Show holds the parent-show fields accompanying an episode.
type Show struct {
	Title string `json:"title"`
	Year  int    `json:"year"`
	IDs   IDs    `json:"ids"`
}

// IDs carries the cross-service identifiers Trakt attaches to every item.
type IDs struct {
	Trakt int64  `json:"trakt"`
	Slug  string `json:"slug,omitempty"`
	IMDB  string `json:"imdb,omitempty"`
	TMDB  int64  `json:"tmdb,omitempty"`
}

// RatingItem is one entry of the /users/{id}/ratings endpoint.
type RatingItem struct {
	Rating  int      `json:"rating"`
	Type    string   `json:"type"`
	Movie   *Movie   `json:"movie,omitempty"`
	Episode *Episode `json:"episode,omitempty"`
	Show    *Show    `json:"show,omitempty"`
}

// User is the subset of the /users/{id} profile used for the graph header.
type User struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Private  bool   `json:"private"`
	Images   struct {
		Avatar struct {
			Full string `json:"full"`
		} `json:"avatar"`
	} `json:"images"`
}
