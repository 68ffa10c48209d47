package http

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-kit/log"
	"go-smart-calc"
	"go-smart-calc/convert"
	"go-smart-calc/discount"
	"go-smart-calc/expression"
	"golang.org/x/time/rate"
)

// Server dependencies for HTTP Server functions
type Server struct {
	Calculator expression.Service
	Converter  convert.Service
	Discounter discount.Service
	Logger     log.Logger

	router  http.ServeMux
	handler http.Handler
}

// NewServer wires services into routes. A nil limiter disables rate limiting.
func NewServer(calc expression.Service, conv convert.Service, disc discount.Service, limiter *rate.Limiter, logger log.Logger) *Server {
	server := &Server{
		Calculator: calc,
		Converter:  conv,
		Discounter: disc,
		Logger:     logger,
		router:     http.ServeMux{},
	}
	server.routes()

	var h http.Handler = &server.router
	if limiter != nil {
		h = limit(limiter, h)
	}
	server.handler = requestID(logRequests(logger, h))
	return server
}

func (s *Server) routes() {
	s.router.Handle("/api/calculate", post(s.calculate()))
	s.router.Handle("/api/convert", post(s.convert()))
	s.router.Handle("/api/discount", post(s.discount()))
	s.router.Handle("/api/currencies", get(s.currencies()))
}

func (s *Server) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(rw, r)
}

// errorResponse body of every failed request
type errorResponse struct {
	Error string `json:"error"`
}

// calculate produces HTTP handler for expression evaluation
func (s *Server) calculate() http.HandlerFunc {

	type request struct {
		Expression string `json:"expression"`
	}

	type response struct {
		Result string `json:"result"`
	}

	return func(rw http.ResponseWriter, r *http.Request) {
		var request request
		if err := decode(rw, r, &request); err != nil {
			writeJSON(rw, http.StatusBadRequest, errorResponse{smartcalc.MsgError})
			return
		}

		v, err := s.Calculator.Calculate(r.Context(), request.Expression)
		if err != nil {
			writeJSON(rw, http.StatusBadRequest, errorResponse{smartcalc.Message(err)})
			return
		}
		writeJSON(rw, http.StatusOK, response{Result: v.String()})
	}
}

// convert produces HTTP handler for currency conversions
func (s *Server) convert() http.HandlerFunc {

	// request for unmarshalling JSON requests posted by clients
	type request struct {
		FromCurrency smartcalc.Currency `json:"fromCurrency"`
		ToCurrency   smartcalc.Currency `json:"toCurrency"`
		Amount       *smartcalc.Amount  `json:"amount"`
	}

	// response for marshalling JSON responses to return to clients
	type response struct {
		From     smartcalc.Currency `json:"from"`
		To       smartcalc.Currency `json:"to"`
		Exchange smartcalc.Rate     `json:"exchange"`
		Amount   smartcalc.Amount   `json:"amount"`
		Original smartcalc.Amount   `json:"original"`
		Text     string             `json:"text"`
	}

	return func(rw http.ResponseWriter, r *http.Request) {
		var request request
		if err := decode(rw, r, &request); err != nil || request.Amount == nil {
			writeJSON(rw, http.StatusBadRequest, errorResponse{smartcalc.MsgInvalidNumber})
			return
		}

		result, err := s.Converter.Convert(r.Context(), *request.Amount, request.FromCurrency, request.ToCurrency)
		if err != nil {
			writeJSON(rw, http.StatusBadRequest, errorResponse{smartcalc.Message(err)})
			return
		}

		writeJSON(rw, http.StatusOK, response{
			From:     result.From,
			To:       result.To,
			Exchange: result.Rate,
			Amount:   result.Amount,
			Original: result.Original,
			Text:     convert.Format(result),
		})
	}
}

// discount produces HTTP handler for discount calculations
func (s *Server) discount() http.HandlerFunc {

	type request struct {
		Price   *smartcalc.Amount `json:"price"`
		Percent *float64          `json:"percent"`
	}

	type response struct {
		Price   smartcalc.Amount `json:"price"`
		Percent float64          `json:"percent"`
		Savings smartcalc.Amount `json:"savings"`
		Final   smartcalc.Amount `json:"final"`
		Text    string           `json:"text"`
	}

	return func(rw http.ResponseWriter, r *http.Request) {
		var request request
		if err := decode(rw, r, &request); err != nil || request.Price == nil || request.Percent == nil {
			writeJSON(rw, http.StatusBadRequest, errorResponse{smartcalc.MsgInvalidNumbers})
			return
		}

		d, err := s.Discounter.Discount(r.Context(), *request.Price, *request.Percent)
		if err != nil {
			writeJSON(rw, http.StatusBadRequest, errorResponse{smartcalc.Message(err)})
			return
		}

		writeJSON(rw, http.StatusOK, response{
			Price:   d.Price,
			Percent: d.Percent,
			Savings: d.Savings,
			Final:   d.Final,
			Text:    discount.Format(d),
		})
	}
}

// currencies produces HTTP handler listing the codes of the loaded table
func (s *Server) currencies() http.HandlerFunc {

	type response struct {
		Base       smartcalc.Currency   `json:"base"`
		Currencies []smartcalc.Currency `json:"currencies"`
	}

	return func(rw http.ResponseWriter, r *http.Request) {
		writeJSON(rw, http.StatusOK, response{
			Base:       smartcalc.BaseCurrency,
			Currencies: s.Converter.Currencies(),
		})
	}
}

// maxBodyBytes largest request body a handler reads
const maxBodyBytes = 1 << 20

func decode(rw http.ResponseWriter, r *http.Request, v interface{}) error {
	defer r.Body.Close()
	bytes, err := io.ReadAll(http.MaxBytesReader(rw, r.Body, maxBodyBytes))
	if err != nil {
		return err
	}
	return json.Unmarshal(bytes, v)
}

func writeJSON(rw http.ResponseWriter, status int, v interface{}) {
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(status)
	_ = json.NewEncoder(rw).Encode(v)
}
