package mux

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"handrank-server/pkg/poker"
)

const writeWait = time.Second * 10
const pongWait = time.Second * 60
const pingPeriod = pongWait * 9 / 10

// wsResponse answers a single websocket request, either with a hand or an error
type wsResponse struct {
	ID    string        `json:"id,omitempty"`
	Hand  *handResponse `json:"hand,omitempty"`
	Error string        `json:"error,omitempty"`
}

// getEvaluateWS streams evaluations: every JSON message received is answered with one response, in order
func (m *Mux) getEvaluateWS() http.HandlerFunc {
	upgrader := &websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}

	return func(w http.ResponseWriter, r *http.Request) {
		logger := loggerFromRequest(r)

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logger.WithError(err).Error("could not upgrade connection")
			return
		}

		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			_ = conn.SetReadDeadline(time.Now().Add(pongWait))
			return nil
		})

		send := make(chan wsResponse, 16)
		done := make(chan struct{})
		go m.webSocketWriteLoop(conn, logger, send, done)

		m.webSocketReadLoop(conn, logger, send)
		close(send)
		<-done
		_ = conn.Close()
	}
}

func (m *Mux) webSocketWriteLoop(conn *websocket.Conn, logger *logrus.Entry, send <-chan wsResponse, done chan<- struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		close(done)
	}()

	// closing the connection unblocks the read loop, which then closes send
	abort := func() {
		_ = conn.Close()
		for range send {
		}
	}

	for {
		select {
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				abort()
				return
			}
		case msg, ok := <-send:
			if !ok {
				_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
				_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}

			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(msg); err != nil {
				logger.WithError(err).Error("could not write message")
				abort()
				return
			}
		}
	}
}

func (m *Mux) webSocketReadLoop(conn *websocket.Conn, logger *logrus.Entry, send chan<- wsResponse) {
	for {
		_, b, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.WithError(err).Error("could not read message")
			}

			return
		}

		var req evaluateRequest
		if err := json.Unmarshal(b, &req); err != nil {
			send <- wsResponse{Error: err.Error()}
			continue
		}

		send <- evaluateMessage(req)
	}
}

func evaluateMessage(req evaluateRequest) wsResponse {
	cards, err := parseHand(req.Cards)
	if err != nil {
		return wsResponse{ID: req.ID, Error: err.Error()}
	}

	hand := newHandResponse(cards, poker.Evaluate(cards))
	return wsResponse{ID: req.ID, Hand: &hand}
}
