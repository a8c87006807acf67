package catalog

// API response shapes for the itbook.store catalog. The service returns
// every numeric field as a string, and reports failures through the
// "error" field even on HTTP 200; anything other than "0" is an error.

type searchResponse struct {
	Error string    `json:"error"`
	Total string    `json:"total"`
	Page  string    `json:"page"`
	Books []bookDTO `json:"books"`
}

type bookDTO struct {
	ISBN13   string `json:"isbn13"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Price    string `json:"price"`
	Image    string `json:"image"`
	URL      string `json:"url"`
}

type bookDetailDTO struct {
	Error     string            `json:"error"`
	Title     string            `json:"title"`
	Subtitle  string            `json:"subtitle"`
	Authors   string            `json:"authors"`
	Publisher string            `json:"publisher"`
	ISBN13    string            `json:"isbn13"`
	Pages     string            `json:"pages"`
	Year      string            `json:"year"`
	Rating    string            `json:"rating"`
	Desc      string            `json:"desc"`
	Price     string            `json:"price"`
	Image     string            `json:"image"`
	URL       string            `json:"url"`
	PDF       map[string]string `json:"pdf,omitempty"`
}
