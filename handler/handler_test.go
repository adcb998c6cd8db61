package handler

import (
	"bytes"
	"cinema_admin/cache"
	"cinema_admin/database"
	"cinema_admin/invoice"
	"cinema_admin/model"
	"cinema_admin/validate"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ict = time.FixedZone("ICT", 7*3600)

type sentMail struct {
	to, orderCode, fileName string
	size                    int
}

type testEnv struct {
	app   *fiber.App
	db    *gorm.DB
	redis *miniredis.Miniredis
	sent  []sentMail

	// lỗi trả về khi gửi mail
	mailErr error
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))
	database.SeedData(db, zaptest.NewLogger(t))
	database.DB = db

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	env := &testEnv{db: db, redis: mr}
	log := zaptest.NewLogger(t)
	Init(Services{
		Location: ict,
		Renderer: invoice.NewRenderer(invoice.Config{
			VenueName:  "CINEMA STAR",
			FilePrefix: "CinemaStar",
			Location:   ict,
		}, log, nil),
		TicketCache: cache.NewTicketPDFCache(rdb, time.Minute),
		SendTickets: func(to, orderCode, fileName string, pdf []byte) error {
			if env.mailErr != nil {
				return env.mailErr
			}
			env.sent = append(env.sent, sentMail{to, orderCode, fileName, len(pdf)})
			return nil
		},
		Log: log,
	})

	app := fiber.New()
	app.Post("/showtime/slots", validate.GenerateSlots(), GenerateShowtimeSlots)
	app.Post("/showtime/slots/remove", validate.RemoveSlot(), RemoveShowtimeSlot)
	app.Post("/showtime/batch", validate.CreateShowtimeBatch(), CreateShowtimeBatch)
	app.Get("/order/:orderCode/tickets", validate.GetOrderCode("orderCode"), DownloadTickets)
	app.Post("/order/:orderCode/tickets/email", validate.GetOrderCode("orderCode"), validate.EmailTickets(), EmailTickets)
	env.app = app
	return env
}

func (e *testEnv) do(t *testing.T, method, path string, body any) (*http.Response, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

type envelope struct {
	Status   string          `json:"status"`
	Message  string          `json:"message"`
	KeyError string          `json:"keyError"`
	Data     json.RawMessage `json:"data"`
}

func decode(t *testing.T, raw []byte) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(raw, &env))
	return env
}

func TestGenerateShowtimeSlotsHandler(t *testing.T) {
	env := newTestEnv(t)
	movie := model.Movie{Title: "Mai", Duration: 95}
	require.NoError(t, env.db.Create(&movie).Error)

	resp, raw := env.do(t, http.MethodPost, "/showtime/slots", fiber.Map{
		"firstShowClock": "21:00", "bufferMinutes": 10, "adMinutes": 10,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(raw))
	var data struct {
		Slots       []string `json:"slots"`
		SlotMinutes int      `json:"slotMinutes"`
	}
	require.NoError(t, json.Unmarshal(decode(t, raw).Data, &data))
	assert.Equal(t, []string{"21:00"}, data.Slots)
	assert.Equal(t, 140, data.SlotMinutes)

	resp, raw = env.do(t, http.MethodPost, "/showtime/slots", fiber.Map{
		"movieId": movie.ID, "firstShowClock": "10:00", "bufferMinutes": 15, "adMinutes": 10,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(raw))
	require.NoError(t, json.Unmarshal(decode(t, raw).Data, &data))
	assert.Equal(t, []string{"10:00", "12:00", "14:00", "16:00", "18:00", "20:00", "22:00"}, data.Slots)
}

func TestGenerateShowtimeSlotsHandlerRejectsInput(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name string
		body fiber.Map
		key  string
	}{
		{"missing clock", fiber.Map{"bufferMinutes": 10}, "firstShowClock"},
		{"bad clock", fiber.Map{"firstShowClock": "25:00"}, "firstShowClock"},
		{"negative buffer", fiber.Map{"firstShowClock": "09:00", "bufferMinutes": -1}, "bufferMinutes"},
		{"unknown movie", fiber.Map{"firstShowClock": "09:00", "movieId": 404}, "movieId"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, raw := env.do(t, http.MethodPost, "/showtime/slots", tt.body)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
			assert.Equal(t, tt.key, decode(t, raw).KeyError)
		})
	}
}

func TestRemoveShowtimeSlotHandler(t *testing.T) {
	env := newTestEnv(t)

	resp, raw := env.do(t, http.MethodPost, "/showtime/slots/remove", fiber.Map{
		"slots": []string{"09:00", "11:00", "13:00"}, "index": 1,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(raw))
	var data struct {
		Slots []string `json:"slots"`
	}
	require.NoError(t, json.Unmarshal(decode(t, raw).Data, &data))
	assert.Equal(t, []string{"09:00", "13:00"}, data.Slots)

	resp, raw = env.do(t, http.MethodPost, "/showtime/slots/remove", fiber.Map{
		"slots": []string{"09:00"}, "index": 3,
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "index", decode(t, raw).KeyError)
}

func TestCreateShowtimeBatchHandler(t *testing.T) {
	env := newTestEnv(t)
	movie := model.Movie{Title: "Mai", Duration: 131}
	room := model.Room{Name: "Phòng 1"}
	require.NoError(t, env.db.Create(&movie).Error)
	require.NoError(t, env.db.Create(&room).Error)

	resp, raw := env.do(t, http.MethodPost, "/showtime/batch", fiber.Map{
		"movieId":   movie.ID,
		"roomId":    room.ID,
		"startDate": "2026-10-16",
		"endDate":   "2026-10-18",
		"format":    "2D",
		"slots":     []string{"09:00", "18:30"},
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode, string(raw))

	var body struct {
		Message   string                 `json:"message"`
		Showtimes []model.ShowtimeRecord `json:"showtimes"`
	}
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Len(t, body.Showtimes, 6)
	assert.Equal(t, 131*time.Minute, body.Showtimes[0].EndTime.Sub(body.Showtimes[0].StartTime))

	var count int64
	require.NoError(t, env.db.Model(&model.Showtime{}).Where("format = ?", "2D").Count(&count).Error)
	assert.Equal(t, int64(6), count)
}

func TestCreateShowtimeBatchHandlerRejectsInput(t *testing.T) {
	env := newTestEnv(t)
	movie := model.Movie{Title: "Mai", Duration: 131}
	room := model.Room{Name: "Phòng 1"}
	require.NoError(t, env.db.Create(&movie).Error)
	require.NoError(t, env.db.Create(&room).Error)

	base := func() fiber.Map {
		return fiber.Map{
			"movieId":   movie.ID,
			"roomId":    room.ID,
			"startDate": "2026-10-16",
			"slots":     []string{"09:00"},
		}
	}
	tests := []struct {
		name   string
		change func(fiber.Map)
		key    string
	}{
		{"no movie", func(m fiber.Map) { delete(m, "movieId") }, "movieId"},
		{"unknown room", func(m fiber.Map) { m["roomId"] = 999 }, "roomId"},
		{"no start date", func(m fiber.Map) { delete(m, "startDate") }, "startDate"},
		{"no slots", func(m fiber.Map) { m["slots"] = []string{} }, "slots"},
		{"bad slot", func(m fiber.Map) { m["slots"] = []string{"9:00"} }, "slots[0]"},
		{"end before start", func(m fiber.Map) { m["endDate"] = "2026-10-15" }, "endDate"},
		{"bad format", func(m fiber.Map) { m["format"] = "8K" }, "format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := base()
			tt.change(body)
			resp, raw := env.do(t, http.MethodPost, "/showtime/batch", body)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, string(raw))
			assert.Equal(t, tt.key, decode(t, raw).KeyError)
		})
	}

	var count int64
	require.NoError(t, env.db.Model(&model.Showtime{}).Count(&count).Error)
	assert.Zero(t, count)
}

func seedOrder(t *testing.T, db *gorm.DB, code string, tickets int) {
	t.Helper()
	movie := model.Movie{Title: "Lật Mặt 7: Một Điều Ước", Duration: 138}
	room := model.Room{Name: "Phòng 4"}
	require.NoError(t, db.Create(&movie).Error)
	require.NoError(t, db.Create(&room).Error)

	var normal model.SeatType
	require.NoError(t, db.Where("type = ?", "NORMAL").First(&normal).Error)

	showtime := model.Showtime{
		PublicCode: "ST-" + code,
		StartTime:  time.Date(2026, 10, 17, 20, 0, 0, 0, ict),
		EndTime:    time.Date(2026, 10, 17, 22, 18, 0, 0, ict),
		IsActive:   true,
		Format:     "2D",
		MovieId:    movie.ID,
		RoomId:     room.ID,
	}
	require.NoError(t, db.Create(&showtime).Error)

	order := model.Order{PublicCode: code, ShowtimeID: showtime.ID, TotalAmount: float64(tickets) * 90000, Status: "PAID"}
	require.NoError(t, db.Omit("Showtime").Create(&order).Error)

	for i := 0; i < tickets; i++ {
		seat := model.Seat{Row: "G", Column: i + 1, RoomId: room.ID, SeatTypeId: normal.ID}
		require.NoError(t, db.Create(&seat).Error)
		ticket := model.Ticket{
			TicketCode: code + "-T" + string(rune('1'+i)),
			Price:      90000,
			ShowtimeId: showtime.ID,
			SeatId:     seat.ID,
			OrderId:    order.ID,
		}
		require.NoError(t, db.Omit("Seat").Create(&ticket).Error)
	}
}

func TestDownloadTickets(t *testing.T) {
	env := newTestEnv(t)
	seedOrder(t, env.db, "ORD-AB12CD34", 2)

	resp, raw := env.do(t, http.MethodGet, "/order/ORD-AB12CD34/tickets", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(raw))
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Equal(t, `attachment; filename="CinemaStar_Tickets_AB12CD34.pdf"`, resp.Header.Get("Content-Disposition"))
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF-")))
	assert.True(t, env.redis.Exists("tickets:pdf:ORD-AB12CD34"))

	// lần sau lấy từ cache, xoá đơn trong DB vẫn tải được
	require.NoError(t, env.db.Where("public_code = ?", "ORD-AB12CD34").Delete(&model.Order{}).Error)
	resp, cached := env.do(t, http.MethodGet, "/order/ORD-AB12CD34/tickets", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, raw, cached)

	// refresh bỏ cache, đơn đã xoá nên trả 404
	resp, _ = env.do(t, http.MethodGet, "/order/ORD-AB12CD34/tickets?refresh=true", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.False(t, env.redis.Exists("tickets:pdf:ORD-AB12CD34"))
}

func TestDownloadTicketsErrors(t *testing.T) {
	env := newTestEnv(t)
	seedOrder(t, env.db, "ORD-EMPTY001", 0)

	resp, raw := env.do(t, http.MethodGet, "/order/ORD-MISSING1/tickets", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "orderCode", decode(t, raw).KeyError)

	resp, _ = env.do(t, http.MethodGet, "/order/ORD-EMPTY001/tickets", nil)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.False(t, env.redis.Exists("tickets:pdf:ORD-EMPTY001"))

	resp, _ = env.do(t, http.MethodGet, "/order/ORD-THIS-CODE-IS-WAY-TOO-LONG/tickets", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestEmailTickets(t *testing.T) {
	env := newTestEnv(t)
	seedOrder(t, env.db, "ORD-MAIL0001", 3)

	resp, raw := env.do(t, http.MethodPost, "/order/ORD-MAIL0001/tickets/email", fiber.Map{"email": "khach@example.com"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(raw))
	require.Len(t, env.sent, 1)
	assert.Equal(t, "khach@example.com", env.sent[0].to)
	assert.Equal(t, "ORD-MAIL0001", env.sent[0].orderCode)
	assert.Equal(t, "CinemaStar_Tickets_MAIL0001.pdf", env.sent[0].fileName)
	assert.Positive(t, env.sent[0].size)

	resp, raw = env.do(t, http.MethodPost, "/order/ORD-MAIL0001/tickets/email", fiber.Map{"email": "not-an-email"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "email", decode(t, raw).KeyError)

	env.mailErr = errors.New("smtp timeout")
	resp, _ = env.do(t, http.MethodPost, "/order/ORD-MAIL0001/tickets/email", fiber.Map{"email": "khach@example.com"})
	assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)
	assert.Len(t, env.sent, 1)
}
