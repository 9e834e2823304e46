package main

import (
	"encoding/json"
	"flag"
	"net/http"
	"sync/atomic"

	"github.com/DIMO-Network/messenger-bot-api/internal/messenger"
	"github.com/DIMO-Network/server-garage/pkg/logging"
	"github.com/google/uuid"
)

// Stands in for the Send API when running the bot locally:
// GRAPH_API_URL=http://localhost:8081
func main() {
	addr := flag.String("addr", ":8081", "listen address")
	flag.Parse()
	logger := logging.GetAndSetDefaultLogger("graph-api-receiver")

	var received atomic.Int64
	http.HandleFunc("POST /me/messages", func(w http.ResponseWriter, r *http.Request) {
		var req messenger.SendRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"error":{"message":"Invalid payload","type":"OAuthException","code":100}}`, http.StatusBadRequest)
			return
		}
		if err := req.Validate(); err != nil {
			logger.Warn().Err(err).Msg("Rejected send request")
			http.Error(w, `{"error":{"message":"Invalid parameter","type":"OAuthException","code":100}}`, http.StatusBadRequest)
			return
		}

		n := received.Add(1)
		event := logger.Info().Int64("call", n).Str("recipientId", req.Recipient.ID)
		if req.Message != nil {
			event = event.Str("text", req.Message.Text)
		} else {
			event = event.Str("senderAction", string(req.SenderAction))
		}
		event.Msg("Send API call received")

		resp := messenger.SendResponse{RecipientID: req.Recipient.ID}
		if req.Message != nil {
			resp.MessageID = "mid." + uuid.NewString()
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	})

	logger.Info().Str("addr", *addr).Msg("Graph API receiver listening")
	if err := http.ListenAndServe(*addr, nil); err != nil { //nolint:gosec
		logger.Fatal().Err(err).Msg("Receiver stopped")
	}
}
