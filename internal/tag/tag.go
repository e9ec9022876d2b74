package tag

// Tag labels recipes for filtering (e.g. breakfast, dinner).
type Tag struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}
