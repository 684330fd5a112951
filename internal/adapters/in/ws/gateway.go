package ws

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"dispatch/internal/core/domain/model/notification"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

const (
	userTypeAdmin    = "admin"
	userTypeDelivery = "delivery"
	userTypeCustomer = "customer"

	// roomOrders is the catch-all room every connection joins. It is reserved
	// for future broadcast use; nothing publishes to it today.
	roomOrders = "orders"

	// handshakeWait bounds how long a fresh connection may take to send its
	// handshake frame before the gateway drops it.
	handshakeWait = 10 * time.Second
)

// handshakeRequest is the first frame a client sends after the upgrade.
type handshakeRequest struct {
	Token            string `json:"token"`
	UserType         string `json:"userType"`
	DeliveryPersonID *int64 `json:"deliveryPersonId,omitempty"`
	CustomerID       *int64 `json:"customerId,omitempty"`
}

// connectedData acknowledges a successful handshake.
type connectedData struct {
	ConnectionID string   `json:"connectionId"`
	Rooms        []string `json:"rooms"`
}

// Gateway upgrades HTTP requests to websocket connections, authenticates the
// handshake and hands verified clients to the hub.
type Gateway struct {
	hub      *Hub
	verifier *TokenVerifier
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

// NewGateway creates a gateway bound to the hub and token verifier.
func NewGateway(hub *Hub, verifier *TokenVerifier, logger *slog.Logger) *Gateway {
	return &Gateway{
		hub:      hub,
		verifier: verifier,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Browsers enforce origin on their side; tokens carry the trust.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		logger: logger.With("component", "ws-gateway"),
	}
}

// Handle serves GET /ws. The connection is registered only after the
// handshake frame arrives and its token matches the claimed identity;
// anything else closes the socket.
func (g *Gateway) Handle(c echo.Context) error {
	conn, err := g.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	rooms, err := g.handshake(conn)
	if err != nil {
		g.logger.Warn("handshake rejected", "remote", conn.RemoteAddr().String(), "error", err)
		_ = conn.Close()
		return nil
	}

	client := newClient(conn, rooms)
	g.hub.register(client)

	// The ack must be queued before the read pump starts: the pump's cleanup
	// closes the send channel when the peer vanishes, and a peer can vanish
	// right after the handshake.
	g.ack(client)

	go client.writePump()
	go client.readPump(g.hub)

	return nil
}

// handshake reads and verifies the first frame, returning the rooms the
// connection joins.
func (g *Gateway) handshake(conn *websocket.Conn) ([]string, error) {
	_ = conn.SetReadDeadline(time.Now().Add(handshakeWait))

	_, raw, err := conn.ReadMessage()
	if err != nil {
		return nil, err
	}

	var req handshakeRequest
	if err = json.Unmarshal(raw, &req); err != nil {
		return nil, err
	}

	claims, err := g.verifier.Verify(req.Token)
	if err != nil {
		return nil, err
	}
	if !claims.matchesIdentity(req.UserType, req.DeliveryPersonID, req.CustomerID) {
		return nil, ErrIdentityMismatch
	}

	audience, err := audienceFromHandshake(req)
	if err != nil {
		return nil, err
	}

	return []string{audience.Room(), roomOrders}, nil
}

// ack queues the connected frame on the client's send channel so it is
// serialized with any events that race the registration. Callers queue it
// before readPump starts; the pump owns closing the channel.
func (g *Gateway) ack(client *Client) {
	message, err := json.Marshal(frame{
		Event: "connected",
		Data: connectedData{
			ConnectionID: client.id.String(),
			Rooms:        client.rooms,
		},
	})
	if err != nil {
		g.logger.Error("marshal connected ack", "error", err)
		return
	}

	select {
	case client.send <- message:
	default:
	}
}

// audienceFromHandshake maps the claimed identity to its audience value.
func audienceFromHandshake(req handshakeRequest) (notification.Audience, error) {
	kind, err := notification.AudienceKindFromKey(req.UserType)
	if err != nil {
		return notification.Audience{}, err
	}

	switch kind {
	case notification.AudienceDeliveryPerson:
		return notification.NewAudience(kind, req.DeliveryPersonID)
	case notification.AudienceCustomer:
		return notification.NewAudience(kind, req.CustomerID)
	default:
		return notification.NewAdminAudience(), nil
	}
}
