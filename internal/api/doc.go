// Package api 組裝 gin 路由。
//
// 路由、中間件的掛載順序都在這裡決定，實際的請求處理放在 handlers 子包。
package api
