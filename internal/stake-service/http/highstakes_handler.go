package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/radieske/stake-service/internal/stake-service/repo"
	"github.com/radieske/stake-service/internal/stake-service/stake"
)

// highStakes devolve o CSV "customerId=amount,..." com o maior stake de cada
// cliente na aposta, preferencialmente do cache
func (s *Server) highStakes(w http.ResponseWriter, r *http.Request) {
	betID, err := stake.ParseBetID(chi.URLParam(r, "betId"))
	if err != nil {
		status, msg := stake.Classify(err)
		writeText(w, status, msg)
		return
	}

	if s.cache != nil {
		list, ok, err := s.cache.Get(r.Context(), betID)
		if err != nil {
			s.log.Warn("highstakes cache get failed", zap.Uint32("betId", uint32(betID)), zap.Error(err))
		} else if ok {
			writeText(w, http.StatusOK, formatHighStakes(list))
			return
		}
	}

	list, err := s.reader.TopStakes(r.Context(), betID)
	if err != nil {
		s.log.Error("highstakes query failed", zap.Uint32("betId", uint32(betID)), zap.Error(err))
		writeText(w, http.StatusInternalServerError, stake.MsgInternalError)
		return
	}

	if s.cache != nil {
		if err := s.cache.Set(r.Context(), betID, list); err != nil {
			s.log.Warn("highstakes cache set failed", zap.Uint32("betId", uint32(betID)), zap.Error(err))
		}
	}
	writeText(w, http.StatusOK, formatHighStakes(list))
}

func formatHighStakes(list []repo.HighStake) string {
	var b strings.Builder
	for i, hs := range list {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(hs.CustomerID.String())
		b.WriteByte('=')
		b.WriteString(hs.Amount.String())
	}
	return b.String()
}
