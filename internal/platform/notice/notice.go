// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package notice models the short confirmation messages ("toasts") shown to
the visitor after an action.

A [Notice] is produced locally and returned alongside the response payload.
Nothing is delivered to a third party; a quote request, for example, only
yields a notice and a log line.
*/
package notice

// Kind classifies how a notice is presented.
type Kind string

const (
	KindSuccess Kind = "success"
	KindInfo    Kind = "info"
	KindError   Kind = "error"
)

// Notice is a client-side notification.
type Notice struct {
	Kind        Kind   `json:"kind"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// Success builds a success notice with an optional description.
func Success(title string, description ...string) Notice {
	n := Notice{Kind: KindSuccess, Title: title}
	if len(description) > 0 {
		n.Description = description[0]
	}
	return n
}

// IsZero reports whether n carries nothing to show.
func (n Notice) IsZero() bool {
	return n == Notice{}
}
