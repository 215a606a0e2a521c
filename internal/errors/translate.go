package errors

// directories maps internal validation codes to user-facing messages.
// Codes without an entry are surfaced as-is.
var directories = map[string]string{
	"REGISTER_USER.NOT_CONTAIN_NEEDED_PROPERTY":           "tidak dapat membuat user baru karena properti yang dibutuhkan tidak ada",
	"REGISTER_USER.NOT_MEET_DATA_TYPE_SPECIFICATION":      "tidak dapat membuat user baru karena tipe data tidak sesuai",
	"REGISTER_USER.USERNAME_LIMIT_CHAR":                   "tidak dapat membuat user baru karena karakter username melebihi batas limit",
	"REGISTER_USER.USERNAME_CONTAIN_RESTRICTED_CHARACTER": "tidak dapat membuat user baru karena username mengandung karakter terlarang",

	"USER_LOGIN.NOT_CONTAIN_NEEDED_PROPERTY":      "harus mengirimkan username dan password",
	"USER_LOGIN.NOT_MEET_DATA_TYPE_SPECIFICATION": "username dan password harus string",

	"REFRESH_AUTHENTICATION_USE_CASE.NOT_CONTAIN_REFRESH_TOKEN":                 "harus mengirimkan token refresh",
	"REFRESH_AUTHENTICATION_USE_CASE.PAYLOAD_NOT_MEET_DATA_TYPE_SPECIFICATION":  "refresh token harus string",
	"DELETE_AUTHENTICATION_USE_CASE.NOT_CONTAIN_REFRESH_TOKEN":                  "harus mengirimkan token refresh",
	"DELETE_AUTHENTICATION_USE_CASE.PAYLOAD_NOT_MEET_DATA_TYPE_SPECIFICATION":   "refresh token harus string",

	"POST_THREAD.NOT_CONTAIN_NEEDED_PROPERTY": "tidak dapat membuat thread karena tidak terdapat title atau body",
	"POST_THREAD.NOT_MEET_DATA_SPECIFICATION": "tidak dapat membuat thread karena tipe data title atau body tidak sesuai",
	"POST_THREAD.TITLE_LIMIT_CHAR":            "tidak dapat membuat thread karena panjang title lebih dari 70 karakter",
	"POST_THREAD.BODY_LIMIT_CHAR":             "tidak dapat membuat thread karena panjang body lebih dari 250 karakter",

	"POST_COMMENT.NOT_CONTAIN_NEEDED_PROPERTY": "tidak dapat membuat comment karena tidak terdapat content",
	"POST_COMMENT.NOT_MEET_DATA_SPECIFICATION": "tidak dapat membuat comment karena tipe data content tidak sesuai",
	"POST_COMMENT.CONTENT_LIMIT_CHAR":          "tidak dapat membuat comment karena panjang content lebih dari 250 karakter",

	"DELETE_COMMENT_USE_CASE.NOT_CONTAIN_NEEDED_PROPERTY":              "harus mengirimkan thread i atau comment id atau owner",
	"DELETE_COMMENT_USE_CASE.PAYLOAD_NOT_MEET_DATA_TYPE_SPECIFICATION": "tipe data untuk menghapus komentar tidak sesuai",

	"POST_REPLY.NOT_CONTAIN_NEEDED_PROPERTY": "tidak dapat membuat reply karena tidak terdapat content",
	"POST_REPLY.NOT_MEET_DATA_SPECIFICATION": "tidak dapat membuat reply karena tipe data content tidak sesuai",
	"POST_REPLY.CONTENT_LIMIT_CHAR":          "tidak dapat membuat reply karena panjang content lebih dari 250 karakter",
}

// Translate resolves an internal validation code to its localized message.
// Unmapped codes come back unchanged.
func Translate(code string) string {
	if msg, ok := directories[code]; ok {
		return msg
	}
	return code
}
