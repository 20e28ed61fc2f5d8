package i18n

var catalog = map[Lang]map[string]string{
	Vietnamese: {
		"app.title":                   "Walking Guide",
		"nav.home":                    "Trang chủ",
		"nav.places":                  "Địa điểm",
		"nav.tours":                   "Tour",
		"nav.articles":                "Bài viết",
		"nav.hotels":                  "Khách sạn",
		"nav.restaurants":             "Nhà hàng",
		"nav.my_tours":                "Tour của tôi",
		"nav.my_bookings":             "Đặt chỗ của tôi",
		"nav.write_article":           "Viết bài",
		"nav.notifications":           "Thông báo",
		"nav.profile":                 "Hồ sơ",
		"nav.admin":                   "Quản trị",
		"nav.login":                   "Đăng nhập",
		"nav.register":                "Đăng ký",
		"nav.logout":                  "Đăng xuất",
		"error.generic":               "Đã xảy ra lỗi. Vui lòng thử lại sau.",
		"error.title":                 "Lỗi",
		"error.not_found":             "Không tìm thấy nội dung bạn yêu cầu.",
		"error.session_expired":       "Phiên đăng nhập đã hết hạn. Vui lòng đăng nhập lại.",
		"error.forbidden":             "Bạn không có quyền truy cập trang này.",
		"error.login_required":        "Vui lòng đăng nhập để tiếp tục.",
		"error.invalid_credentials":   "Email hoặc mật khẩu không đúng.",
		"empty.list":                  "Chưa có dữ liệu.",
		"empty.notifications":         "Bạn chưa có thông báo nào.",
		"confirm.title":               "Xác nhận",
		"confirm.delete":              "Bạn có chắc chắn muốn xóa mục này?",
		"confirm.delete_notification": "Bạn có chắc chắn muốn xóa thông báo này?",
		"confirm.cancel_booking":      "Bạn có chắc chắn muốn hủy đặt chỗ này?",
		"button.ok":                   "Đồng ý",
		"button.cancel":               "Hủy",
		"button.delete":               "Xóa",
		"button.save":                 "Lưu",
		"button.create":               "Tạo mới",
		"button.edit":                 "Sửa",
		"button.close":                "Đóng",
		"success.saved":               "Đã lưu thành công.",
		"success.deleted":             "Đã xóa thành công.",
		"success.booked":              "Đặt tour thành công. Vui lòng chờ xác nhận.",
		"success.registered":          "Đăng ký thành công. Vui lòng kiểm tra email để xác thực tài khoản.",
		"success.reset_sent":          "Đã gửi email hướng dẫn đặt lại mật khẩu.",
		"success.password_reset":      "Đặt lại mật khẩu thành công. Vui lòng đăng nhập.",
		"success.verified":            "Xác thực email thành công.",
		"success.reported":            "Cảm ơn bạn đã báo cáo. Chúng tôi sẽ xem xét sớm.",
		"notifications.mark_all":      "Đánh dấu tất cả đã đọc",
		"notifications.mark_read":     "Đánh dấu đã đọc",
		"booking.pending":             "Đang chờ",
		"booking.approved":            "Đã duyệt",
		"booking.rejected":            "Bị từ chối",
		"booking.cancelled":           "Đã hủy",
		"validation.required":         "Trường này là bắt buộc.",
		"validation.email":            "Email không hợp lệ.",
		"validation.password_short":   "Mật khẩu phải có ít nhất 6 ký tự.",
		"validation.password_match":   "Mật khẩu xác nhận không khớp.",
		"validation.spots":            "Số chỗ phải lớn hơn 0.",
		"validation.date":             "Ngày không hợp lệ.",
		"validation.date_past":        "Ngày khởi hành không được ở trong quá khứ.",
		"validation.too_long":         "Nội dung quá dài.",
		"validation.otp":              "Mã OTP phải gồm 6 chữ số.",
		"validation.number":           "Giá trị phải là số.",
		"admin.add_image":             "Thêm ảnh",
		"admin.articles":              "Bài viết",
		"admin.bookings":              "Đặt chỗ",
		"admin.dismiss":               "Bỏ qua",
		"admin.footer":                "Chân trang",
		"admin.hotels":                "Khách sạn",
		"admin.images":                "Thư viện ảnh",
		"admin.place_tags":            "Gắn thẻ địa điểm",
		"admin.places":                "Địa điểm",
		"admin.primary":               "Ảnh chính",
		"admin.reports":               "Báo cáo bài viết",
		"admin.resolve":               "Đã xử lý",
		"admin.restaurants":           "Nhà hàng",
		"admin.set_primary":           "Đặt làm ảnh chính",
		"admin.tags":                  "Thẻ",
		"admin.tour_steps":            "Lịch trình tour",
		"admin.tours":                 "Tour",
		"admin.users":                 "Người dùng",
		"article.add_comment":         "Gửi bình luận",
		"article.comments":            "Bình luận",
		"article.pending":             "Chờ duyệt",
		"article.published":           "Đã đăng",
		"article.rejected":            "Bị từ chối",
		"article.report":              "Báo cáo",
		"article.report_reason":       "Lý do",
		"auth.forgot_password":        "Quên mật khẩu?",
		"auth.resend_verification":    "Gửi lại email xác thực",
		"auth.reset_password":         "Đặt lại mật khẩu",
		"auth.verify":                 "Xác thực",
		"auth.verify_otp":             "Nhập mã OTP",
		"booking.approve":             "Duyệt",
		"booking.book":                "Đặt tour",
		"booking.cancel":              "Hủy đặt chỗ",
		"booking.login_to_book":       "Đăng nhập để đặt tour",
		"booking.reject":              "Từ chối",
		"button.back":                 "Quay lại",
		"button.send":                 "Gửi",
		"confirm.delete_image":        "Bạn có chắc chắn muốn xóa ảnh này?",
		"empty.comments":              "Chưa có bình luận nào.",
		"error.image_index":           "Vị trí ảnh không hợp lệ.",
		"error.invalid_status":        "Trạng thái không hợp lệ.",
		"field.address":               "Địa chỉ",
		"field.city":                  "Thành phố",
		"field.company_name":          "Tên công ty",
		"field.confirm_password":      "Xác nhận mật khẩu",
		"field.content":               "Nội dung",
		"field.copyright":             "Bản quyền",
		"field.cuisine":               "Ẩm thực",
		"field.description":           "Mô tả",
		"field.duration":              "Thời lượng",
		"field.email":                 "Email",
		"field.full_name":             "Họ và tên",
		"field.image":                 "Hình ảnh",
		"field.is_public":             "Công khai",
		"field.latitude":              "Vĩ độ",
		"field.longitude":             "Kinh độ",
		"field.max_spots":             "Số chỗ tối đa",
		"field.name":                  "Tên",
		"field.note":                  "Ghi chú",
		"field.otp":                   "Mã OTP",
		"field.password":              "Mật khẩu",
		"field.phone":                 "Điện thoại",
		"field.place":                 "Địa điểm",
		"field.price":                 "Giá",
		"field.price_range":           "Khoảng giá",
		"field.role":                  "Vai trò",
		"field.start_date":            "Ngày khởi hành",
		"field.start_time":            "Giờ bắt đầu",
		"field.status":                "Trạng thái",
		"field.step_order":            "Thứ tự",
		"field.tag":                   "Thẻ",
		"field.title":                 "Tiêu đề",
		"field.tour":                  "Tour",
		"field.website":               "Website",
		"label.all":                   "Tất cả",
		"label.itinerary":             "Lịch trình",
		"label.menu":                  "Thực đơn",
		"label.search":                "Tìm kiếm",
		"label.spots":                 "chỗ",
		"notifications.view_all":      "Xem tất cả",
		"role.admin":                  "Quản trị viên",
		"role.user":                   "Người dùng",
		"success.article_submitted":   "Đã gửi bài viết. Bài viết sẽ hiển thị sau khi được duyệt.",
		"success.cancelled":           "Đã hủy đặt chỗ.",
		"success.verification_sent":   "Đã gửi lại email xác thực.",
	},
	English: {
		"app.title":                   "Walking Guide",
		"nav.home":                    "Home",
		"nav.places":                  "Places",
		"nav.tours":                   "Tours",
		"nav.articles":                "Articles",
		"nav.hotels":                  "Hotels",
		"nav.restaurants":             "Restaurants",
		"nav.my_tours":                "My tours",
		"nav.my_bookings":             "My bookings",
		"nav.write_article":           "Write",
		"nav.notifications":           "Notifications",
		"nav.profile":                 "Profile",
		"nav.admin":                   "Admin",
		"nav.login":                   "Sign in",
		"nav.register":                "Sign up",
		"nav.logout":                  "Sign out",
		"error.generic":               "Something went wrong. Please try again later.",
		"error.title":                 "Error",
		"error.not_found":             "We could not find what you were looking for.",
		"error.session_expired":       "Your session has expired. Please sign in again.",
		"error.forbidden":             "You are not allowed to open this page.",
		"error.login_required":        "Please sign in to continue.",
		"error.invalid_credentials":   "Wrong email or password.",
		"empty.list":                  "Nothing here yet.",
		"empty.notifications":         "You have no notifications.",
		"confirm.title":               "Please confirm",
		"confirm.delete":              "Are you sure you want to delete this item?",
		"confirm.delete_notification": "Are you sure you want to delete this notification?",
		"confirm.cancel_booking":      "Are you sure you want to cancel this booking?",
		"button.ok":                   "OK",
		"button.cancel":               "Cancel",
		"button.delete":               "Delete",
		"button.save":                 "Save",
		"button.create":               "Create",
		"button.edit":                 "Edit",
		"button.close":                "Close",
		"success.saved":               "Saved.",
		"success.deleted":             "Deleted.",
		"success.booked":              "Tour booked. Please wait for confirmation.",
		"success.registered":          "Account created. Check your email to verify it.",
		"success.reset_sent":          "Password reset instructions have been sent.",
		"success.password_reset":      "Password changed. Please sign in.",
		"success.verified":            "Email verified.",
		"success.reported":            "Thanks for the report. We will review it soon.",
		"notifications.mark_all":      "Mark all as read",
		"notifications.mark_read":     "Mark as read",
		"booking.pending":             "Pending",
		"booking.approved":            "Approved",
		"booking.rejected":            "Rejected",
		"booking.cancelled":           "Cancelled",
		"validation.required":         "This field is required.",
		"validation.email":            "Invalid email address.",
		"validation.password_short":   "Password must be at least 6 characters.",
		"validation.password_match":   "Passwords do not match.",
		"validation.spots":            "Spots must be greater than 0.",
		"validation.date":             "Invalid date.",
		"validation.date_past":        "Start date cannot be in the past.",
		"validation.too_long":         "Text is too long.",
		"validation.otp":              "The OTP must be 6 digits.",
		"validation.number":           "Value must be a number.",
		"admin.add_image":             "Add image",
		"admin.articles":              "Articles",
		"admin.bookings":              "Bookings",
		"admin.dismiss":               "Dismiss",
		"admin.footer":                "Footer",
		"admin.hotels":                "Hotels",
		"admin.images":                "Gallery",
		"admin.place_tags":            "Place tags",
		"admin.places":                "Places",
		"admin.primary":               "Primary",
		"admin.reports":               "Article reports",
		"admin.resolve":               "Resolve",
		"admin.restaurants":           "Restaurants",
		"admin.set_primary":           "Make primary",
		"admin.tags":                  "Tags",
		"admin.tour_steps":            "Tour steps",
		"admin.tours":                 "Tours",
		"admin.users":                 "Users",
		"article.add_comment":         "Post comment",
		"article.comments":            "Comments",
		"article.pending":             "Pending",
		"article.published":           "Published",
		"article.rejected":            "Rejected",
		"article.report":              "Report",
		"article.report_reason":       "Reason",
		"auth.forgot_password":        "Forgot your password?",
		"auth.resend_verification":    "Resend verification email",
		"auth.reset_password":         "Reset password",
		"auth.verify":                 "Verify",
		"auth.verify_otp":             "Enter your OTP",
		"booking.approve":             "Approve",
		"booking.book":                "Book this tour",
		"booking.cancel":              "Cancel booking",
		"booking.login_to_book":       "Sign in to book",
		"booking.reject":              "Reject",
		"button.back":                 "Back",
		"button.send":                 "Send",
		"confirm.delete_image":        "Are you sure you want to delete this image?",
		"empty.comments":              "No comments yet.",
		"error.image_index":           "Invalid image position.",
		"error.invalid_status":        "Invalid status.",
		"field.address":               "Address",
		"field.city":                  "City",
		"field.company_name":          "Company name",
		"field.confirm_password":      "Confirm password",
		"field.content":               "Content",
		"field.copyright":             "Copyright",
		"field.cuisine":               "Cuisine",
		"field.description":           "Description",
		"field.duration":              "Duration",
		"field.email":                 "Email",
		"field.full_name":             "Full name",
		"field.image":                 "Image",
		"field.is_public":             "Public",
		"field.latitude":              "Latitude",
		"field.longitude":             "Longitude",
		"field.max_spots":             "Max spots",
		"field.name":                  "Name",
		"field.note":                  "Note",
		"field.otp":                   "OTP",
		"field.password":              "Password",
		"field.phone":                 "Phone",
		"field.place":                 "Place",
		"field.price":                 "Price",
		"field.price_range":           "Price range",
		"field.role":                  "Role",
		"field.start_date":            "Start date",
		"field.start_time":            "Start time",
		"field.status":                "Status",
		"field.step_order":            "Order",
		"field.tag":                   "Tag",
		"field.title":                 "Title",
		"field.tour":                  "Tour",
		"field.website":               "Website",
		"label.all":                   "All",
		"label.itinerary":             "Itinerary",
		"label.menu":                  "Menu",
		"label.search":                "Search",
		"label.spots":                 "spots",
		"notifications.view_all":      "See all",
		"role.admin":                  "Administrator",
		"role.user":                   "User",
		"success.article_submitted":   "Article submitted. It will appear once approved.",
		"success.cancelled":           "Booking cancelled.",
		"success.verification_sent":   "Verification email sent again.",
	},
}
