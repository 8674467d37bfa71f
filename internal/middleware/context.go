package middleware

// ContextKeyRequestID stores the request identifier on the echo context.
const ContextKeyRequestID = "request_id"
