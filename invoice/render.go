package invoice

import (
	"bytes"
	"cinema_admin/model"
	"cinema_admin/utils"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/gosimple/slug"
	"go.uber.org/zap"
)

const fontFamily = "Helvetica"

// Ngày tạo cố định khi đơn chưa có CreatedAt, để file ra giống nhau giữa các lần in
var fallbackCreationDate = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

type Config struct {
	VenueName    string
	AddressLine1 string
	AddressLine2 string
	FilePrefix   string
	// Location đổi giờ suất chiếu trước khi in, nil thì giữ nguyên
	Location *time.Location
	// Tắt nén content stream (dùng khi cần đọc PDF dạng text)
	DisableCompression bool
}

// Observer nhận trạng thái render (đang in, lỗi nhúng QR)
type Observer interface {
	RenderStarted()
	RenderFinished(err error)
	EmbedFailed(ticketID string, err error)
}

type nopObserver struct{}

func (nopObserver) RenderStarted()            {}
func (nopObserver) RenderFinished(error)      {}
func (nopObserver) EmbedFailed(string, error) {}

// Document file PDF đã render xong
type Document struct {
	FileName string
	Pages    int
	Content  []byte
}

type Renderer struct {
	cfg Config
	log *zap.Logger
	obs Observer
}

func NewRenderer(cfg Config, log *zap.Logger, obs Observer) *Renderer {
	if log == nil {
		log = zap.NewNop()
	}
	if obs == nil {
		obs = nopObserver{}
	}
	return &Renderer{cfg: cfg, log: log, obs: obs}
}

// FileName {prefix}_Tickets_{8 ký tự cuối mã đơn}.pdf
func FileName(prefix, orderID string) string {
	if !slug.IsSlug(strings.ToLower(prefix)) {
		prefix = slug.Make(prefix)
	}
	if prefix == "" {
		prefix = "Cinema"
	}
	code := utils.LastChars(orderID, OrderCodeChars)
	if code == "" {
		code = "order"
	}
	return fmt.Sprintf("%s_Tickets_%s.pdf", prefix, code)
}

// Render in mỗi vé một trang theo thứ tự trong đơn.
// Lỗi nhúng QR chỉ ảnh hưởng trang đó, lỗi khác trả về *RenderError và không có file.
func (r *Renderer) Render(data model.InvoiceData, movie model.InvoiceMovie, showtime model.InvoiceShowtime, seats []model.InvoiceSeat) (doc *Document, err error) {
	r.obs.RenderStarted()
	defer func() {
		if rec := recover(); rec != nil {
			doc = nil
			err = &RenderError{OrderID: data.ID, Err: fmt.Errorf("panic: %v", rec)}
		}
		if err != nil {
			r.log.Error("render tickets", zap.String("order", data.ID), zap.Error(err))
		}
		r.obs.RenderFinished(err)
	}()

	pages, err := r.Layout(data, movie, showtime, seats)
	if err != nil {
		return nil, err
	}

	pdf := r.newPDF(data.CreatedAt)
	for i, page := range pages {
		pdf.AddPage()
		for _, op := range page.Ops {
			r.draw(pdf, i, page.TicketID, op)
		}
		if pdf.Err() {
			return nil, &RenderError{OrderID: data.ID, TicketID: page.TicketID, Err: pdf.Error()}
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, &RenderError{OrderID: data.ID, Err: err}
	}

	doc = &Document{
		FileName: FileName(r.cfg.FilePrefix, data.ID),
		Pages:    pdf.PageCount(),
		Content:  buf.Bytes(),
	}
	r.log.Info("tickets rendered",
		zap.String("order", data.ID),
		zap.Int("pages", doc.Pages),
		zap.Int("bytes", len(doc.Content)),
	)
	return doc, nil
}

func (r *Renderer) newPDF(createdAt time.Time) *fpdf.Fpdf {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: PageWidth, Ht: PageHeight},
	})
	pdf.SetMargins(Margin, Margin, Margin)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCompression(!r.cfg.DisableCompression)
	pdf.SetCatalogSort(true)

	if createdAt.IsZero() {
		createdAt = fallbackCreationDate
	}
	pdf.SetCreationDate(createdAt)
	pdf.SetModificationDate(createdAt)
	pdf.SetTitle("Tickets", false)
	pdf.SetCreator(utils.Transliterate(r.cfg.VenueName), false)
	pdf.SetFont(fontFamily, "", 10)
	return pdf
}

func (r *Renderer) draw(pdf *fpdf.Fpdf, pageIdx int, ticketID string, op Op) {
	switch op.Kind {
	case OpText:
		drawText(pdf, op)
	case OpRect:
		pdf.SetFillColor(op.Fill[0], op.Fill[1], op.Fill[2])
		pdf.Rect(op.X, op.Y, op.W, op.H, "F")
	case OpDash:
		pdf.SetDrawColor(120, 120, 120)
		pdf.SetDashPattern([]float64{1, 1}, 0)
		pdf.Line(op.X, op.Y, op.X+op.W, op.Y)
		pdf.SetDashPattern([]float64{}, 0)
		pdf.SetDrawColor(0, 0, 0)
	case OpImage:
		if err := embedImage(pdf, fmt.Sprintf("qr-%d", pageIdx+1), op); err != nil {
			r.log.Warn("embed ticket qr", zap.String("ticket", ticketID), zap.Error(err))
			r.obs.EmbedFailed(ticketID, err)
			drawText(pdf, Op{
				X: Margin, Y: op.Y + op.H/2 - 2, W: PageWidth - 2*Margin, H: 4,
				Text: op.Text, Font: op.Font, Style: "I", Align: op.Align,
			})
		}
	}
}

func drawText(pdf *fpdf.Fpdf, op Op) {
	pdf.SetFont(fontFamily, op.Style, op.Font)
	pdf.SetXY(op.X, op.Y)
	pdf.CellFormat(op.W, op.H, op.Text, "", 0, op.Align, false, 0, "")
}

var imageTypes = map[string]string{
	"png":  "PNG",
	"jpeg": "JPG",
	"gif":  "GIF",
}

// embedImage nhúng ảnh QR, lỗi của fpdf được xoá để các trang sau vẫn in được
func embedImage(pdf *fpdf.Fpdf, name string, op Op) error {
	raw, err := utils.DecodeDataURL(op.Source)
	if err != nil {
		return fmt.Errorf("decode qr: %w", err)
	}
	_, format, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("read qr image: %w", err)
	}
	imageType, ok := imageTypes[format]
	if !ok {
		return fmt.Errorf("unsupported qr image format %q", format)
	}

	opts := fpdf.ImageOptions{ImageType: imageType}
	pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(raw))
	if pdf.Err() {
		err := pdf.Error()
		pdf.ClearError()
		if err == nil {
			err = errors.New("register qr image")
		}
		return err
	}
	pdf.ImageOptions(name, op.X, op.Y, op.W, op.H, false, opts, 0, "")
	return nil
}
