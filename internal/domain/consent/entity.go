// Package consent models legal-document templates and the per-customer
// grants recorded against them.
package consent

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrTitleRequired   = errors.New("title is required")
	ErrContentRequired = errors.New("content is required")
	ErrAlreadyGranted  = errors.New("consent already granted")
	ErrNotGranted      = errors.New("consent not granted")
)

type GrantStatus string

const (
	GrantStatusGranted   GrantStatus = "GRANTED"
	GrantStatusWithdrawn GrantStatus = "WITHDRAWN"
)

func (s GrantStatus) String() string {
	return string(s)
}

type Template struct {
	id       uuid.UUID
	title    string
	content  string
	version  int
	required bool
}

func NewTemplate(title, content string, version int, required bool) (*Template, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrTitleRequired
	}
	if strings.TrimSpace(content) == "" {
		return nil, ErrContentRequired
	}
	if version < 1 {
		version = 1
	}

	return &Template{
		id:       uuid.New(),
		title:    title,
		content:  content,
		version:  version,
		required: required,
	}, nil
}

func (t *Template) ID() uuid.UUID  { return t.id }
func (t *Template) Title() string  { return t.title }
func (t *Template) Content() string { return t.content }
func (t *Template) Version() int   { return t.version }
func (t *Template) Required() bool { return t.required }

type Grant struct {
	id          uuid.UUID
	templateID  uuid.UUID
	customerID  uuid.UUID
	status      GrantStatus
	grantedAt   time.Time
	withdrawnAt *time.Time
}

func NewGrant(templateID, customerID uuid.UUID, grantedAt time.Time) *Grant {
	return &Grant{
		id:         uuid.New(),
		templateID: templateID,
		customerID: customerID,
		status:     GrantStatusGranted,
		grantedAt:  grantedAt,
	}
}

// Withdraw marks the grant withdrawn; withdrawing twice is rejected so the
// audit trail keeps the first withdrawal timestamp.
func (g *Grant) Withdraw(at time.Time) error {
	if g.status == GrantStatusWithdrawn {
		return ErrNotGranted
	}
	g.status = GrantStatusWithdrawn
	g.withdrawnAt = &at
	return nil
}

func (g *Grant) ID() uuid.UUID           { return g.id }
func (g *Grant) TemplateID() uuid.UUID   { return g.templateID }
func (g *Grant) CustomerID() uuid.UUID   { return g.customerID }
func (g *Grant) Status() GrantStatus     { return g.status }
func (g *Grant) GrantedAt() time.Time    { return g.grantedAt }
func (g *Grant) WithdrawnAt() *time.Time { return g.withdrawnAt }
