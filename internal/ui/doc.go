// Package ui holds the portfolio page's non-visual state: the theme preference,
// the mobile navigation drawer and the contact form's submission status. The three
// are independent; none reads another's state.
package ui
