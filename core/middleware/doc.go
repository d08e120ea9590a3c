// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - auth: API key validation. An empty key disables it.
//   - rayid: tags every request with a ray id, stored in locals and echoed
//     in the X-Ray-ID response header for log correlation.
//   - limiter: caps the number of concurrent uploads.
package middleware
