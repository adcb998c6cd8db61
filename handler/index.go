package handler

import (
	"cinema_admin/cache"
	"cinema_admin/invoice"
	"time"

	"go.uber.org/zap"
)

// TicketSender gửi file vé cho khách
type TicketSender func(to, orderCode, fileName string, pdf []byte) error

type Services struct {
	Location    *time.Location
	Renderer    *invoice.Renderer
	TicketCache *cache.TicketPDFCache
	SendTickets TicketSender
	Log         *zap.Logger
}

var svc Services

// Init gắn các service dùng chung cho handler, gọi trước khi SetupRoutes
func Init(s Services) {
	if s.Log == nil {
		s.Log = zap.NewNop()
	}
	if s.Location == nil {
		s.Location = time.FixedZone("ICT", 7*3600)
	}
	if s.Renderer == nil {
		s.Renderer = invoice.NewRenderer(invoice.Config{Location: s.Location}, s.Log, nil)
	}
	svc = s
}
