package newsapi

import (
	"encoding/json"
	"errors"
)

// Response is a decoded API payload. Immutable after decoding; read through
// the accessors.
type Response struct {
	status   string
	articles []Article
	code     string
}

// Status returns the API status string; "ok" marks success.
func (r *Response) Status() string { return r.status }

// Articles returns the decoded articles.
func (r *Response) Articles() []Article { return r.articles }

// Code returns the API error code and whether the server sent one. The code
// is only populated on failure responses.
func (r *Response) Code() (string, bool) { return r.code, r.code != "" }

type responseJSON struct {
	Status   *string   `json:"status"`
	Articles []Article `json:"articles"`
	Code     *string   `json:"code,omitempty"`
}

func (r *Response) UnmarshalJSON(data []byte) error {
	var aux responseJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.Status == nil {
		return errors.New("response missing status")
	}
	r.status = *aux.Status
	r.articles = aux.Articles
	r.code = ""
	if aux.Code != nil {
		r.code = *aux.Code
	}
	return nil
}

func (r Response) MarshalJSON() ([]byte, error) {
	aux := responseJSON{Status: &r.status, Articles: r.articles}
	if r.code != "" {
		aux.Code = &r.code
	}
	return json.Marshal(aux)
}

// Article is a single decoded news record. Immutable after decoding.
type Article struct {
	title          string
	url            string
	description    string
	hasDescription bool
}

// Title returns the article headline.
func (a Article) Title() string { return a.title }

// URL returns the canonical article link.
func (a Article) URL() string { return a.url }

// Description returns the article summary and whether the server sent one;
// a JSON null maps to absent.
func (a Article) Description() (string, bool) { return a.description, a.hasDescription }

type articleJSON struct {
	Title       *string `json:"title"`
	URL         *string `json:"url"`
	Description *string `json:"description"`
}

func (a *Article) UnmarshalJSON(data []byte) error {
	var aux articleJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.Title == nil {
		return errors.New("article missing title")
	}
	if aux.URL == nil {
		return errors.New("article missing url")
	}
	a.title = *aux.Title
	a.url = *aux.URL
	a.description = ""
	a.hasDescription = aux.Description != nil
	if a.hasDescription {
		a.description = *aux.Description
	}
	return nil
}

func (a Article) MarshalJSON() ([]byte, error) {
	aux := articleJSON{Title: &a.title, URL: &a.url}
	if a.hasDescription {
		aux.Description = &a.description
	}
	return json.Marshal(aux)
}
