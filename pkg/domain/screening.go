package domain

// TicketStatus is the coarse purchase-availability bucket for a screening.
type TicketStatus string

const (
	TicketsOnSale  TicketStatus = "on_sale"
	TicketsNotYet  TicketStatus = "not_yet"
	TicketsSoldOut TicketStatus = "sold_out"
	TicketsUnknown TicketStatus = "unknown"
)

// Screening represents one scheduled showing of one film at one theater,
// as surfaced by a single source.
//
// Date, TimeSlot and TicketSaleDate are kept as the source's display strings
// rather than structured timestamps; sources supply inconsistent and often
// incomplete date text. Best-effort interpretation happens in pkg/dates and
// never mutates these fields.
type Screening struct {
	Title          string       `bson:"title"`
	Theater        string       `bson:"theater"`
	Date           string       `bson:"date"`
	TimeSlot       string       `bson:"time_slot"`
	Description    string       `bson:"description"`
	SpecialNote    string       `bson:"special_note"`
	Director       string       `bson:"director"`
	TicketInfo     string       `bson:"ticket_info"`
	TicketSaleDate string       `bson:"ticket_sale_date"`
	TicketStatus   TicketStatus `bson:"ticket_status"`
	URL            string       `bson:"url"`
	Priority       int          `bson:"priority"` // lower = higher priority, set once at ingestion
}

// TheaterGroup is a theater name plus its ordered surviving screenings.
// It exists only to drive presentation and is never persisted.
type TheaterGroup struct {
	Theater    string
	Screenings []Screening
}
