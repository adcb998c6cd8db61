package constants

const (
	ERROR_INPUT           = "Dữ liệu đầu vào không hợp lệ"
	NOT_FOUND_ORDER       = "Không tìm thấy đơn hàng"
	NOT_FOUND_MOVIE       = "Phim không tồn tại"
	NOT_FOUND_ROOM        = "Phòng chiếu không tồn tại"
	ERROR_GENERATE_SLOTS  = "Không thể tạo khung giờ chiếu"
	ERROR_CREATE_SHOWTIME = "Không thể tạo lịch chiếu"
	ERROR_RENDER_TICKETS  = "Không thể tạo file vé"
	ERROR_SEND_EMAIL      = "Không thể gửi email"
	ORDER_HAS_NO_TICKETS  = "Đơn hàng không có vé"
	MISSING_TOKEN         = "Missing token"
	INVALID_TOKEN         = "Invalid token"
)
