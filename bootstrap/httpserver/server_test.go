// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/orbs-network/go-mock"
	"github.com/orbs-network/orbs-counter-go/config"
	"github.com/orbs-network/orbs-counter-go/crypto/encoding"
	"github.com/orbs-network/orbs-counter-go/instrumentation/metric"
	"github.com/orbs-network/orbs-counter-go/jsonapi"
	"github.com/orbs-network/orbs-counter-go/protocol"
	"github.com/orbs-network/orbs-counter-go/services/counter"
	"github.com/orbs-network/orbs-counter-go/services/publicapi"
	"github.com/orbs-network/orbs-counter-go/test/builders"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

var programId = builders.AddressForTests(0xc0)

type harness struct {
	papiMock *publicapi.MockPublicApi
	registry metric.Registry
	server   *HttpServer
	router   http.Handler
}

func newHarness(t *testing.T) *harness {
	papiMock := &publicapi.MockPublicApi{}
	registry := metric.NewRegistry()
	server := &HttpServer{
		logger:         log.DefaultTestingLogger(t).WithTags(LogTag),
		publicApi:      papiMock,
		metricRegistry: registry,
		config:         config.ForCounterTests(programId),
		startTime:      time.Now(),
	}
	return &harness{papiMock: papiMock, registry: registry, server: server, router: server.createRouter()}
}

func (h *harness) do(method string, path string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.router.ServeHTTP(rec, req)
	return rec
}

func (h *harness) verifyMocks(t *testing.T) {
	ok, err := h.papiMock.Verify()
	require.True(t, ok, "%v", err)
}

func signedTransactionJson(t *testing.T) []byte {
	signedTx := builders.Transaction(programId, counter.METHOD_INCREMENT).WithCounterAccounts(builders.AddressForTests(1), builders.DefaultSigner()).Build()
	body, err := json.Marshal(jsonapi.FromSignedTransaction(signedTx))
	require.NoError(t, err)
	return body
}

func TestHttpServerReadInput_EmptyPost(t *testing.T) {
	req, _ := http.NewRequest("POST", "1", nil)
	_, e := readInput(httptest.NewRecorder(), req)

	require.Equal(t, http.StatusBadRequest, e.code, "empty body should cause bad request error")
}

func TestHttpServerReadInput_ErrorBodyPost(t *testing.T) {
	req, _ := http.NewRequest("POST", "1", errReader(0))
	_, e := readInput(httptest.NewRecorder(), req)

	require.Equal(t, http.StatusBadRequest, e.code, "failing body should cause bad request error")
}

func TestHttpServerReadInput_BodyAtLimitIsAccepted(t *testing.T) {
	req, _ := http.NewRequest("POST", "1", bytes.NewReader(make([]byte, MAX_REQUEST_BODY_BYTES)))
	input, e := readInput(httptest.NewRecorder(), req)

	require.Nil(t, e)
	require.Len(t, input, MAX_REQUEST_BODY_BYTES)
}

func TestHttpServerReadInput_BodyOverLimitIsTooLarge(t *testing.T) {
	req, _ := http.NewRequest("POST", "1", bytes.NewReader(make([]byte, MAX_REQUEST_BODY_BYTES+1)))
	_, e := readInput(httptest.NewRecorder(), req)

	require.NotNil(t, e)
	require.Equal(t, http.StatusRequestEntityTooLarge, e.code, "oversized body should be refused")
}

type errReader int

func (errReader) Read(p []byte) (n int, err error) {
	return 0, errors.Errorf("test error")
}

func TestHttpServerTranslateStatusToHttpCode(t *testing.T) {
	tests := []struct {
		expect int
		status protocol.TransactionStatus
	}{
		{http.StatusOK, protocol.TRANSACTION_STATUS_COMMITTED},
		{http.StatusOK, protocol.TRANSACTION_STATUS_DUPLICATE_TRANSACTION},
		{http.StatusBadRequest, protocol.TRANSACTION_STATUS_REJECTED_SIGNATURE_MISMATCH},
		{http.StatusBadRequest, protocol.TRANSACTION_STATUS_REJECTED_MISSING_SIGNATURE},
		{http.StatusBadRequest, protocol.TRANSACTION_STATUS_REJECTED_TIMESTAMP_WINDOW_EXCEEDED},
		{http.StatusNotFound, protocol.TRANSACTION_STATUS_REJECTED_PROGRAM_NOT_DEPLOYED},
		{http.StatusInternalServerError, protocol.TRANSACTION_STATUS_REJECTED_SYSTEM_ERROR},
		{http.StatusInternalServerError, protocol.TRANSACTION_STATUS_RESERVED},
	}
	for i := range tests {
		cTest := tests[i]
		t.Run(cTest.status.String(), func(t *testing.T) {
			t.Parallel()
			require.Equal(t, cTest.expect, translateTransactionStatusToHttpCode(cTest.status), fmt.Sprintf("%s was translated to %d", cTest.status, cTest.expect))
		})
	}
}

func TestHttpServerSendTxHandler_Basic(t *testing.T) {
	h := newHarness(t)
	h.papiMock.When("SendTransaction", mock.Any, mock.Any).Times(1).Return(&protocol.TransactionReceipt{
		TransactionStatus: protocol.TRANSACTION_STATUS_COMMITTED,
		ExecutionResult:   protocol.EXECUTION_RESULT_SUCCESS,
		Logs:              []string{"Counter incremented. Current count: 1"},
		OutputValue:       1,
	}, nil)

	rec := h.do(http.MethodPost, "/api/v1/send-transaction", signedTransactionJson(t))

	require.Equal(t, http.StatusOK, rec.Code, "should succeed")
	receipt := &jsonapi.TransactionReceipt{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), receipt))
	require.Equal(t, protocol.EXECUTION_RESULT_SUCCESS.String(), receipt.ExecutionResult)
	require.EqualValues(t, 1, receipt.OutputValue)
	require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	h.verifyMocks(t)
}

func TestHttpServerSendTxHandler_RejectedTransactionCarriesReceipt(t *testing.T) {
	h := newHarness(t)
	h.papiMock.When("SendTransaction", mock.Any, mock.Any).Times(1).Return(&protocol.TransactionReceipt{
		TransactionStatus: protocol.TRANSACTION_STATUS_REJECTED_MISSING_SIGNATURE,
		ExecutionResult:   protocol.EXECUTION_RESULT_NOT_EXECUTED,
	}, nil)

	rec := h.do(http.MethodPost, "/api/v1/send-transaction", signedTransactionJson(t))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), protocol.TRANSACTION_STATUS_REJECTED_MISSING_SIGNATURE.String())
}

func TestHttpServerSendTxHandler_Error(t *testing.T) {
	h := newHarness(t)
	h.papiMock.When("SendTransaction", mock.Any, mock.Any).Times(1).Return(nil, errors.Errorf("stam"))

	rec := h.do(http.MethodPost, "/api/v1/send-transaction", signedTransactionJson(t))

	require.Equal(t, http.StatusInternalServerError, rec.Code, "should fail")
	h.verifyMocks(t)
}

func TestHttpServerSendTxHandler_BadInputNeverReachesPublicApi(t *testing.T) {
	h := newHarness(t)
	h.papiMock.Never("SendTransaction", mock.Any, mock.Any)

	require.Equal(t, http.StatusBadRequest, h.do(http.MethodPost, "/api/v1/send-transaction", []byte("not json")).Code)
	require.Equal(t, http.StatusBadRequest, h.do(http.MethodPost, "/api/v1/send-transaction", []byte(`{"Transaction":{"ProgramId":"0x01"}}`)).Code)
	require.Equal(t, http.StatusBadRequest, h.do(http.MethodPost, "/api/v1/send-transaction", nil).Code)
	require.Equal(t, http.StatusRequestEntityTooLarge, h.do(http.MethodPost, "/api/v1/send-transaction", bytes.Repeat([]byte(" "), MAX_REQUEST_BODY_BYTES+1)).Code)
	h.verifyMocks(t)
}

func TestHttpServerCorsPreflight(t *testing.T) {
	h := newHarness(t)

	rec := h.do(http.MethodOptions, "/api/v1/send-transaction", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Methods"))
}

func TestHttpServerGetCounter(t *testing.T) {
	h := newHarness(t)
	address := builders.AddressForTests(7)
	h.papiMock.When("GetCounter", mock.Any, address).Times(1).Return(&publicapi.CounterState{Address: address, Count: 3}, nil)

	rec := h.do(http.MethodGet, "/api/v1/counter/"+encoding.EncodeHex(address), nil)

	require.Equal(t, http.StatusOK, rec.Code)
	out := &jsonapi.Counter{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
	require.EqualValues(t, 3, out.Count)
	require.Equal(t, encoding.EncodeHex(address), out.Address)
	h.verifyMocks(t)
}

func TestHttpServerGetCounter_Errors(t *testing.T) {
	h := newHarness(t)
	missing, notACounter := builders.AddressForTests(8), builders.AddressForTests(9)
	h.papiMock.When("GetCounter", mock.Any, missing).Return(nil, publicapi.ErrAccountNotFound)
	h.papiMock.When("GetCounter", mock.Any, notACounter).Return(nil, errors.Wrap(publicapi.ErrNotACounter, "owned by someone else"))

	require.Equal(t, http.StatusNotFound, h.do(http.MethodGet, "/api/v1/counter/"+encoding.EncodeHex(missing), nil).Code)
	require.Equal(t, http.StatusBadRequest, h.do(http.MethodGet, "/api/v1/counter/"+encoding.EncodeHex(notACounter), nil).Code)
	require.Equal(t, http.StatusBadRequest, h.do(http.MethodGet, "/api/v1/counter/0x1234", nil).Code)
}

func TestHttpServerGetAccount(t *testing.T) {
	h := newHarness(t)
	address := builders.AddressForTests(7)
	h.papiMock.When("GetAccount", mock.Any, address).Times(1).Return(&protocol.Account{Address: address, Owner: programId, Data: (&counter.Counter{Count: 5}).Encode()}, nil)

	rec := h.do(http.MethodGet, "/api/v1/account/"+encoding.EncodeHex(address), nil)

	require.Equal(t, http.StatusOK, rec.Code)
	out := &jsonapi.Account{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
	require.Equal(t, encoding.EncodeHex(programId), out.Owner)
	h.verifyMocks(t)
}

func TestHttpServerMetricsEndpoints(t *testing.T) {
	h := newHarness(t)
	h.registry.NewGauge("VirtualMachine.ProcessedTransactions.Count").Update(4)
	h.registry.NewLatency("PublicApi.SendTransactionProcessingTime.Millis", time.Second)

	rec := h.do(http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "VirtualMachine_ProcessedTransactions_Count 4")

	rec = h.do(http.MethodGet, "/metrics.json", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	all := map[string]map[string]interface{}{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &all))
	require.EqualValues(t, 4, all["VirtualMachine.ProcessedTransactions.Count"]["Value"])

	rec = h.do(http.MethodGet, "/api/v1/status", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	status := &StatusResponse{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), status))
	require.EqualValues(t, 4, status.Transactions.Processed)
}

func TestHttpServerRobots(t *testing.T) {
	h := newHarness(t)

	rec := h.do(http.MethodGet, "/robots.txt", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "User-agent: *\nDisallow: /\n", rec.Body.String())
}

func TestHttpServerProfilingIsOffByDefault(t *testing.T) {
	h := newHarness(t)
	require.Equal(t, http.StatusNotFound, h.do(http.MethodGet, "/debug/pprof/cmdline", nil).Code)

	h.server.config = config.ForCounterTests(programId).SetBool(config.PROFILING, true)
	h.router = h.server.createRouter()
	require.Equal(t, http.StatusOK, h.do(http.MethodGet, "/debug/pprof/cmdline", nil).Code)
}

func TestHttpServerListensAndShutsDown(t *testing.T) {
	server, err := NewHttpServer(config.ForCounterTests(programId), log.DefaultTestingLogger(t), &publicapi.MockPublicApi{}, metric.NewRegistry())
	require.NoError(t, err)
	require.NotZero(t, server.Port())

	res, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/robots.txt", server.Port()))
	require.NoError(t, err)
	body, _ := ioutil.ReadAll(res.Body)
	_ = res.Body.Close()
	require.Contains(t, string(body), "Disallow")

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	server.GracefulShutdown(ctx)

	_, err = http.Get(fmt.Sprintf("http://127.0.0.1:%d/robots.txt", server.Port()))
	require.Error(t, err, "server should not accept connections after shutdown")
}

func TestHttpServerFailsOnBadAddress(t *testing.T) {
	cfg := config.ForCounterTests(programId).SetString(config.HTTP_ADDRESS, "not-an-address")
	_, err := NewHttpServer(cfg, log.DefaultTestingLogger(t), &publicapi.MockPublicApi{}, metric.NewRegistry())
	require.Error(t, err)
}
