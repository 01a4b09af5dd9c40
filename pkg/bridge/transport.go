package bridge

// WebSocket frame types, matching the RFC 6455 opcodes used by both the
// fasthttp and gorilla connection types.
const (
	TextMessage   = 1
	BinaryMessage = 2
)

// Conn is the client-facing message transport of one session. The
// websocket connection types used by the server satisfy it directly.
// Reads are single-consumer; writes may come from the downlink loop.
type Conn interface {
	ReadMessage() (messageType int, data []byte, err error)
	WriteMessage(messageType int, data []byte) error
	WriteJSON(v interface{}) error
	Close() error
}
