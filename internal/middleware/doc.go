// Package middleware 提供了 HTTP 請求處理的中間件。
//
// 包含 JWT 身份驗證、請求日誌記錄與 CORS 設定。
package middleware
