package invoice

import (
	"cinema_admin/model"
	"cinema_admin/utils"
	"fmt"
	"time"
)

// Khổ giấy in nhiệt, đơn vị mm
const (
	PageWidth  = 80.0
	PageHeight = 200.0
	Margin     = 5.0
	QRSize     = 36.0

	TitleMaxChars   = 25
	TicketCodeChars = 12
	OrderCodeChars  = 8
	maxComboLines   = 5
)

const (
	QRPlaceholder = "Ma QR khong kha dung"
	notAvailable  = "N/A"
	courtesyLine1 = "Cam on quy khach!"
	courtesyLine2 = "Vui long den truoc gio chieu 15 phut"
)

type OpKind int

const (
	OpText OpKind = iota
	OpRect
	OpDash
	OpImage
)

// Op một lệnh vẽ trên trang, toạ độ tính từ góc trên trái
type Op struct {
	Kind  OpKind
	X, Y  float64
	W, H  float64
	Text  string
	Font  float64
	Style string // "", "B", "I"
	Align string // L, C, R
	Fill  [3]int

	// OpImage: Source là data URL/base64, Text là chữ thay thế khi không nhúng được ảnh
	Source string
}

// PageLayout các lệnh vẽ của một vé
type PageLayout struct {
	TicketID string
	Index    int // bắt đầu từ 1
	Total    int
	Ops      []Op
}

type pageBuilder struct {
	ops []Op
}

func (b *pageBuilder) text(y, h, size float64, style, align, s string) {
	b.ops = append(b.ops, Op{
		Kind: OpText, X: Margin, Y: y, W: PageWidth - 2*Margin, H: h,
		Text: s, Font: size, Style: style, Align: align,
	})
}

func (b *pageBuilder) dash(y float64) {
	b.ops = append(b.ops, Op{Kind: OpDash, X: Margin, Y: y, W: PageWidth - 2*Margin})
}

// Layout tính vị trí từng dòng cho mỗi vé, không vẽ gì
func (r *Renderer) Layout(data model.InvoiceData, movie model.InvoiceMovie, showtime model.InvoiceShowtime, seats []model.InvoiceSeat) ([]PageLayout, error) {
	if len(data.Tickets) == 0 {
		return nil, &RenderError{OrderID: data.ID, Err: ErrNoTickets}
	}

	seatByTicket := make(map[string]model.InvoiceSeat, len(seats))
	for _, s := range seats {
		seatByTicket[s.TicketID] = s
	}

	start := showtime.StartTime
	if r.cfg.Location != nil {
		start = start.In(r.cfg.Location)
	}

	total := len(data.Tickets)
	pages := make([]PageLayout, 0, total)
	for i, ticket := range data.Tickets {
		seat, ok := seatByTicket[ticket.ID]
		if !ok {
			return nil, &RenderError{OrderID: data.ID, TicketID: ticket.ID, Err: ErrMissingSeat}
		}
		page := PageLayout{TicketID: ticket.ID, Index: i + 1, Total: total}
		page.Ops = r.ticketOps(data, movie, showtime, start, ticket, seat, i+1 == total, i+1, total)
		pages = append(pages, page)
	}
	return pages, nil
}

func (r *Renderer) ticketOps(data model.InvoiceData, movie model.InvoiceMovie, showtime model.InvoiceShowtime, start time.Time, ticket model.InvoiceTicket, seat model.InvoiceSeat, last bool, index, total int) []Op {
	b := &pageBuilder{}

	// Header
	b.text(8, 6, 14, "B", "C", utils.Transliterate(r.cfg.VenueName))
	b.text(14, 4, 8, "", "C", utils.Transliterate(r.cfg.AddressLine1))
	b.text(18, 4, 8, "", "C", utils.Transliterate(r.cfg.AddressLine2))
	b.dash(24)

	// Phim, suất chiếu
	b.text(27, 6, 11, "B", "C", utils.TruncateText(utils.Transliterate(movie.Title), TitleMaxChars))
	b.text(34, 5, 9, "", "L", "Ngay: "+start.Format("02/01/2006"))
	b.text(39, 5, 9, "", "L", "Gio: "+start.Format("15:04"))
	room := "Phong: " + utils.Transliterate(showtime.RoomName)
	if showtime.Format != "" {
		room += " | " + utils.Transliterate(showtime.Format)
	}
	b.text(44, 5, 9, "", "L", room)

	// Ghế
	b.ops = append(b.ops, Op{Kind: OpRect, X: 10, Y: 51, W: PageWidth - 20, H: 20, Fill: [3]int{230, 230, 230}})
	b.text(53, 9, 20, "B", "C", utils.Transliterate(seat.SeatNumber))
	b.text(63, 5, 9, "", "C", utils.Transliterate(seat.SeatType))
	b.dash(75)

	// QR
	qrTop := 79.0
	if ticket.QRCode != "" {
		b.ops = append(b.ops, Op{
			Kind: OpImage, X: (PageWidth - QRSize) / 2, Y: qrTop, W: QRSize, H: QRSize,
			Source: ticket.QRCode, Text: QRPlaceholder, Font: 8, Align: "C",
		})
	} else {
		b.text(qrTop+QRSize/2-2, 4, 8, "I", "C", QRPlaceholder)
	}
	code := notAvailable
	if ticket.ID != "" {
		code = utils.LastChars(ticket.ID, TicketCodeChars)
	}
	b.text(qrTop+QRSize+2, 4, 8, "", "C", "Ma ve: "+code)
	b.dash(123)

	b.text(126, 6, 11, "B", "L", "Gia ve: "+utils.FormatPrice(seat.Price))

	if last && len(data.Combos) > 0 {
		r.comboOps(b, data)
	}

	// Footer
	orderCode := notAvailable
	if data.ID != "" {
		orderCode = utils.LastChars(data.ID, OrderCodeChars)
	}
	b.text(172, 4, 8, "I", "C", courtesyLine1)
	b.text(176, 4, 7, "", "C", courtesyLine2)
	b.text(182, 4, 8, "", "C", "Don hang: "+orderCode)
	b.text(187, 5, 9, "B", "C", fmt.Sprintf("Ve %d/%d", index, total))
	return b.ops
}

// comboOps đồ ăn kèm và tổng đơn, chỉ in ở trang cuối
func (r *Renderer) comboOps(b *pageBuilder, data model.InvoiceData) {
	y := 134.0
	b.text(y, 4, 8, "B", "L", "Do an & nuoc uong")
	y += 4

	combos := data.Combos
	rest := 0
	if len(combos) > maxComboLines {
		rest = len(combos) - (maxComboLines - 1)
		combos = combos[:maxComboLines-1]
	}
	for _, c := range combos {
		name := fmt.Sprintf("%s x%d", utils.TruncateText(utils.Transliterate(c.Name), 22), c.Quantity)
		b.text(y, 4, 8, "", "L", name)
		b.text(y, 4, 8, "", "R", utils.FormatPrice(c.Price*float64(c.Quantity)))
		y += 4
	}
	if rest > 0 {
		b.text(y, 4, 8, "I", "L", fmt.Sprintf("... va %d mon khac", rest))
		y += 4
	}
	if data.DiscountAmount > 0 {
		b.text(y, 4, 8, "", "L", "Giam gia:")
		b.text(y, 4, 8, "", "R", "-"+utils.FormatPrice(data.DiscountAmount))
		y += 4
	}
	b.text(y+1, 5, 9, "B", "L", "Tong cong:")
	b.text(y+1, 5, 9, "B", "R", utils.FormatPrice(data.TotalAmount))
}
