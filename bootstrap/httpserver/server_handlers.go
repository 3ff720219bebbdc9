// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package httpserver

import (
	"encoding/json"
	"io/ioutil"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/orbs-network/orbs-counter-go/crypto/encoding"
	"github.com/orbs-network/orbs-counter-go/jsonapi"
	"github.com/orbs-network/orbs-counter-go/protocol"
	"github.com/orbs-network/orbs-counter-go/services/publicapi"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
)

// a signed transaction is a few hundred bytes
const MAX_REQUEST_BODY_BYTES = 16 * 1024

func readInput(w http.ResponseWriter, r *http.Request) ([]byte, *httpErr) {
	if r.Body == nil {
		return nil, &httpErr{http.StatusBadRequest, nil, "http request body is empty"}
	}

	bytes, err := ioutil.ReadAll(http.MaxBytesReader(w, r.Body, MAX_REQUEST_BODY_BYTES))
	if err != nil && len(bytes) == MAX_REQUEST_BODY_BYTES {
		return nil, &httpErr{http.StatusRequestEntityTooLarge, log.Error(err), "http request body is too large"}
	}
	if err != nil {
		return nil, &httpErr{http.StatusBadRequest, log.Error(err), "failed reading http request body"}
	}
	if len(bytes) == 0 {
		return nil, &httpErr{http.StatusBadRequest, nil, "http request body is empty"}
	}
	return bytes, nil
}

func readAddress(r *http.Request) (protocol.Address, *httpErr) {
	address, err := encoding.DecodeHexOfSize(chi.URLParam(r, "address"), protocol.ADDRESS_SIZE_BYTES)
	if err != nil {
		return nil, &httpErr{http.StatusBadRequest, log.Error(err), "address is not a valid hex encoded account address"}
	}
	return address, nil
}

// rejected transactions still get their receipt in the body
func translateTransactionStatusToHttpCode(status protocol.TransactionStatus) int {
	switch status {
	case protocol.TRANSACTION_STATUS_COMMITTED, protocol.TRANSACTION_STATUS_DUPLICATE_TRANSACTION:
		return http.StatusOK
	case protocol.TRANSACTION_STATUS_REJECTED_PROGRAM_NOT_DEPLOYED:
		return http.StatusNotFound
	case protocol.TRANSACTION_STATUS_REJECTED_SYSTEM_ERROR, protocol.TRANSACTION_STATUS_RESERVED:
		return http.StatusInternalServerError
	}
	if status.IsRejected() {
		return http.StatusBadRequest
	}
	return http.StatusNotImplemented
}

func (s *HttpServer) sendTransactionHandler(w http.ResponseWriter, r *http.Request) {
	bytes, e := readInput(w, r)
	if e != nil {
		s.writeErrorResponseAndLog(w, e)
		return
	}

	request := &jsonapi.SignedTransaction{}
	if err := json.Unmarshal(bytes, request); err != nil {
		s.writeErrorResponseAndLog(w, &httpErr{http.StatusBadRequest, log.Error(err), "http request is not a valid json signed transaction"})
		return
	}

	signedTx, err := jsonapi.ToSignedTransaction(request)
	if err != nil {
		s.writeErrorResponseAndLog(w, &httpErr{http.StatusBadRequest, log.Error(err), "http request is not a valid signed transaction"})
		return
	}

	s.logger.Info("http server received send-transaction", log.Stringable("request", signedTx.Transaction))
	receipt, err := s.publicApi.SendTransaction(r.Context(), signedTx)
	if receipt == nil {
		if err == nil {
			err = errors.New("no receipt")
		}
		s.writeErrorResponseAndLog(w, &httpErr{http.StatusInternalServerError, log.Error(err), "failed processing transaction"})
		return
	}

	s.writeJson(w, translateTransactionStatusToHttpCode(receipt.TransactionStatus), jsonapi.FromReceipt(receipt))
}

func (s *HttpServer) getCounterHandler(w http.ResponseWriter, r *http.Request) {
	address, e := readAddress(r)
	if e != nil {
		s.writeErrorResponseAndLog(w, e)
		return
	}

	counterState, err := s.publicApi.GetCounter(r.Context(), address)
	if err != nil {
		s.writeErrorResponseAndLog(w, &httpErr{httpCodeForReadError(err), log.Error(err), err.Error()})
		return
	}

	s.writeJson(w, http.StatusOK, &jsonapi.Counter{Address: encoding.EncodeHex(counterState.Address), Count: counterState.Count})
}

func (s *HttpServer) getAccountHandler(w http.ResponseWriter, r *http.Request) {
	address, e := readAddress(r)
	if e != nil {
		s.writeErrorResponseAndLog(w, e)
		return
	}

	account, err := s.publicApi.GetAccount(r.Context(), address)
	if err != nil {
		s.writeErrorResponseAndLog(w, &httpErr{httpCodeForReadError(err), log.Error(err), err.Error()})
		return
	}

	s.writeJson(w, http.StatusOK, jsonapi.FromAccount(account))
}

func httpCodeForReadError(err error) int {
	switch errors.Cause(err) {
	case publicapi.ErrAccountNotFound:
		return http.StatusNotFound
	case publicapi.ErrNotACounter:
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func (s *HttpServer) robots(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	_, err := w.Write([]byte("User-agent: *\nDisallow: /\n"))
	if err != nil {
		s.logger.Info("error writing robots.txt response", log.Error(err))
	}
}

func (s *HttpServer) filterOn(w http.ResponseWriter, r *http.Request) {
	for _, f := range s.logger.Filters() {
		if c, ok := f.(log.ConditionalFilter); ok {
			c.On()
		}
	}

	w.Header().Set("Content-Type", "text/plain")
	_, _ = w.Write([]byte("filter on"))
}

func (s *HttpServer) filterOff(w http.ResponseWriter, r *http.Request) {
	for _, f := range s.logger.Filters() {
		if c, ok := f.(log.ConditionalFilter); ok {
			c.Off()
		}
	}

	w.Header().Set("Content-Type", "text/plain")
	_, _ = w.Write([]byte("filter off"))
}

func (s *HttpServer) dumpMetrics(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	bytes, _ := json.Marshal(s.metricRegistry.ExportAll())
	_, err := w.Write(bytes)
	if err != nil {
		s.logger.Info("error writing response", log.Error(err))
	}
}

func (s *HttpServer) dumpPrometheusMetrics(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; version=0.0.4")
	_, err := w.Write([]byte(s.metricRegistry.ExportPrometheus()))
	if err != nil {
		s.logger.Info("error writing response", log.Error(err))
	}
}

func (s *HttpServer) writeJson(w http.ResponseWriter, code int, body interface{}) {
	bytes, err := json.Marshal(body)
	if err != nil {
		s.logger.Error("failed encoding json response", log.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(bytes); err != nil {
		s.logger.Info("error writing response", log.Error(err))
	}
}
