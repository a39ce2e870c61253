package domain

// Session is the signed-in account of one session scope. ID identifies the
// scope (one browser or API client); the empty ID is the default scope.
type Session struct {
	ID      string  `json:"-"`
	Account Account `json:"account"`
}
