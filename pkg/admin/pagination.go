package admin

// Default cursor values for a freshly opened list view.
const (
	DefaultPage    = 1
	DefaultPerPage = 10
)

// PageState is a snapshot of a list view's pagination cursor.
type PageState struct {
	CurrentPage int `json:"current_page" yaml:"current_page"`
	PerPage     int `json:"per_page"     yaml:"per_page"`
	LastPage    int `json:"last_page"    yaml:"last_page"`
	From        int `json:"from"         yaml:"from"`
	To          int `json:"to"           yaml:"to"`
	Total       int `json:"total"        yaml:"total"`
}

// PaginationState holds the cursor of one paged list view.
//
// Navigation is deliberately unclamped: PrevPage on page 1 yields page 0 and
// NextPage past LastPage keeps counting. Callers disable the controls at the
// boundaries and clamp after a fetch if they need to. Every mutator except
// UpdateFromMeta bumps Trigger so observers can refetch even when the page
// number they watch does not change.
//
// A PaginationState belongs to a single view and is not safe for concurrent use.
type PaginationState struct {
	state   PageState
	trigger uint64
}

// NewPaginationState creates a cursor on page 1 with DefaultPerPage rows.
func NewPaginationState() *PaginationState {
	return &PaginationState{
		state: PageState{
			CurrentPage: DefaultPage,
			PerPage:     DefaultPerPage,
			LastPage:    1,
			From:        1,
			To:          1,
			Total:       0,
		},
	}
}

// UpdateFromMeta overwrites the cursor with the paging descriptor of a list
// response. PerPage is left alone and the descriptor is not validated.
func (p *PaginationState) UpdateFromMeta(meta PageMeta) {
	p.state.CurrentPage = meta.CurrentPage
	p.state.LastPage = meta.LastPage
	p.state.From = meta.From
	p.state.To = meta.To
	p.state.Total = meta.Total
}

// PageSizeChanged returns to the first page after the page size changed.
func (p *PaginationState) PageSizeChanged() {
	p.trigger++
	p.state.CurrentPage = 1
}

// SetPerPage changes the page size and returns to the first page.
func (p *PaginationState) SetPerPage(perPage int) {
	p.state.PerPage = perPage
	p.PageSizeChanged()
}

// PrevPage moves one page back.
func (p *PaginationState) PrevPage() {
	p.trigger++
	p.state.CurrentPage--
}

// NextPage moves one page forward.
func (p *PaginationState) NextPage() {
	p.trigger++
	p.state.CurrentPage++
}

// GoToPage jumps to page. Jumping to the current page changes nothing, not
// even the trigger.
func (p *PaginationState) GoToPage(page int) {
	if p.state.CurrentPage == page {
		return
	}

	p.trigger++
	p.state.CurrentPage = page
}

// Trigger returns the change counter.
func (p *PaginationState) Trigger() uint64 {
	return p.trigger
}

// State returns a copy of the cursor.
func (p *PaginationState) State() PageState {
	return p.state
}

// CurrentPage returns the page the next fetch should request.
func (p *PaginationState) CurrentPage() int {
	return p.state.CurrentPage
}

// PerPage returns the page size.
func (p *PaginationState) PerPage() int {
	return p.state.PerPage
}

// HasPrev reports whether a previous-page control should be enabled.
func (p *PaginationState) HasPrev() bool {
	return p.state.CurrentPage > 1
}

// HasNext reports whether a next-page control should be enabled.
func (p *PaginationState) HasNext() bool {
	return p.state.CurrentPage < p.state.LastPage
}

// Query renders the cursor as list query parameters.
func (p *PaginationState) Query() *Query {
	return NewQuery().
		Set("page", p.state.CurrentPage).
		Set("per_page", p.state.PerPage)
}
