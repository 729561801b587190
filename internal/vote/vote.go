package vote

import (
	"errors"
	"strings"
	"time"
)

type Choice string

const (
	Fake      Choice = "fake"
	NotFake   Choice = "not_fake"
	Undecided Choice = "undecided"
)

type Status string

const (
	StatusFake      Status = "Fake"
	StatusNotFake   Status = "Not Fake"
	StatusUndecided Status = "Undecided"
)

var ErrInvalidChoice = errors.New("vote choice must be fake or not_fake")

type Vote struct {
	ID        string    `json:"id"`
	NewsID    int       `json:"newsId"`
	Choice    Choice    `json:"choice"`
	Comment   string    `json:"comment,omitempty"`
	ImageURL  string    `json:"imageUrl,omitempty"`
	Voter     string    `json:"voter,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// IsComment reports whether the vote shows up in the comment feed.
func (v Vote) IsComment() bool {
	return v.Comment != "" || v.ImageURL != ""
}

type Counts struct {
	Fake      int `json:"fake"`
	NotFake   int `json:"not_fake"`
	Undecided int `json:"undecided"`
}

func (c Counts) Total() int {
	return c.Fake + c.NotFake + c.Undecided
}

func (c Counts) Status() Status {
	if c.Fake > c.NotFake {
		return StatusFake
	}
	if c.NotFake > c.Fake {
		return StatusNotFake
	}

	return StatusUndecided
}

func ParseChoice(s string) (Choice, error) {
	switch Choice(strings.ToLower(strings.TrimSpace(s))) {
	case Fake:
		return Fake, nil
	case NotFake:
		return NotFake, nil
	}

	return "", ErrInvalidChoice
}

// Tallied reports whether c counts toward the fake/not fake majority.
func (c Choice) Tallied() bool {
	return c == Fake || c == NotFake
}
