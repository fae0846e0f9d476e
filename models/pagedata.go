package models

type PageData struct {
	Tasks     []Task
	Filter    string
	Query     string
	Total     int
	Pending   int
	Completed int
	Username  string
	UseDB     bool
}
