package views

// Paginator keeps a cursor inside a window of a long list so the picker can
// show a fixed number of rows at a time
type Paginator struct {
	pageSize   int
	pageOffset int
	cursor     int
	total      int
}

// NewPaginator creates a paginator showing pageSize rows per page
func NewPaginator(pageSize int) *Paginator {
	if pageSize <= 0 {
		pageSize = 10
	}
	return &Paginator{pageSize: pageSize}
}

// SetTotal sets the number of rows and clamps the cursor to them
func (p *Paginator) SetTotal(total int) {
	p.total = total
	p.SetCursor(p.cursor)
}

// SetPageSize changes the window height, e.g. after a terminal resize
func (p *Paginator) SetPageSize(size int) {
	if size <= 0 {
		return
	}
	p.pageSize = size
	p.follow()
}

// Cursor returns the absolute cursor position
func (p *Paginator) Cursor() int {
	return p.cursor
}

// SetCursor moves the cursor to pos, clamped to the list
func (p *Paginator) SetCursor(pos int) {
	p.cursor = max(0, min(pos, p.total-1))
	p.follow()
}

// Up moves the cursor up by one
func (p *Paginator) Up() {
	p.SetCursor(p.cursor - 1)
}

// Down moves the cursor down by one
func (p *Paginator) Down() {
	p.SetCursor(p.cursor + 1)
}

// PageUp moves the cursor one page up
func (p *Paginator) PageUp() {
	p.SetCursor(p.cursor - p.pageSize)
}

// PageDown moves the cursor one page down
func (p *Paginator) PageDown() {
	p.SetCursor(p.cursor + p.pageSize)
}

// VisibleRange returns the start and end indices of the current window
func (p *Paginator) VisibleRange() (start, end int) {
	return p.pageOffset, min(p.pageOffset+p.pageSize, p.total)
}

// TotalPages returns the number of pages
func (p *Paginator) TotalPages() int {
	if p.total == 0 {
		return 1
	}
	return (p.total + p.pageSize - 1) / p.pageSize
}

// CurrentPage returns the current page number (1-based)
func (p *Paginator) CurrentPage() int {
	return p.pageOffset/p.pageSize + 1
}

// follow moves the window so the cursor stays visible
func (p *Paginator) follow() {
	if p.cursor < p.pageOffset || p.cursor >= p.pageOffset+p.pageSize {
		p.pageOffset = (p.cursor / p.pageSize) * p.pageSize
	}
}
