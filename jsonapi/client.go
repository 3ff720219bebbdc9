// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package jsonapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"strings"
	"time"

	"github.com/orbs-network/orbs-counter-go/crypto/encoding"
	"github.com/orbs-network/orbs-counter-go/crypto/signer"
	"github.com/orbs-network/orbs-counter-go/protocol"
	"github.com/orbs-network/orbs-counter-go/services/counter"
	"github.com/orbs-network/orbs-spec/types/go/primitives"
	"github.com/pkg/errors"
)

const (
	SEND_TRANSACTION_PATH = "/api/v1/send-transaction"
	GET_COUNTER_PATH      = "/api/v1/counter/"
	GET_ACCOUNT_PATH      = "/api/v1/account/"
)

var ErrNotFound = errors.New("not found")

type Client struct {
	endpoint   string
	programId  protocol.Address
	httpClient *http.Client
}

func NewClient(endpoint string, programId protocol.Address, timeout time.Duration) *Client {
	return &Client{
		endpoint:   strings.TrimSuffix(endpoint, "/"),
		programId:  programId,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// BuildCounterTransaction lays out the accounts increment and decrement expect: the counter, then the signing user
func BuildCounterTransaction(programId protocol.Address, method primitives.MethodName, counterAddress protocol.Address, user signer.TransactionSigner) (*protocol.SignedTransaction, error) {
	userAddress, err := signer.Address(user)
	if err != nil {
		return nil, err
	}

	accounts := make([]protocol.AccountMeta, counter.ACCOUNTS_COUNT)
	accounts[counter.ACCOUNT_INDEX_COUNTER] = protocol.AccountMeta{Address: counterAddress, IsWritable: true}
	accounts[counter.ACCOUNT_INDEX_USER] = protocol.AccountMeta{Address: userAddress, IsSigner: true, IsWritable: true}

	return signer.SignTransaction(newTransaction(programId, method, accounts), user)
}

// BuildInitializeTransaction creates the counter at the address of counterKey, which co-signs with the paying user
func BuildInitializeTransaction(programId protocol.Address, counterKey signer.TransactionSigner, user signer.TransactionSigner) (*protocol.SignedTransaction, error) {
	counterAddress, err := signer.Address(counterKey)
	if err != nil {
		return nil, err
	}
	userAddress, err := signer.Address(user)
	if err != nil {
		return nil, err
	}

	accounts := make([]protocol.AccountMeta, counter.ACCOUNTS_COUNT)
	accounts[counter.ACCOUNT_INDEX_COUNTER] = protocol.AccountMeta{Address: counterAddress, IsSigner: true, IsWritable: true}
	accounts[counter.ACCOUNT_INDEX_USER] = protocol.AccountMeta{Address: userAddress, IsSigner: true, IsWritable: true}

	return signer.SignTransaction(newTransaction(programId, counter.METHOD_INITIALIZE, accounts), user, counterKey)
}

func newTransaction(programId protocol.Address, method primitives.MethodName, accounts []protocol.AccountMeta) *protocol.Transaction {
	return &protocol.Transaction{
		ProtocolVersion: protocol.CURRENT_PROTOCOL_VERSION,
		ProgramId:       programId,
		MethodName:      method,
		Accounts:        accounts,
		Timestamp:       primitives.TimestampNano(time.Now().UnixNano()),
	}
}

func (c *Client) Initialize(ctx context.Context, counterKey signer.TransactionSigner, user signer.TransactionSigner) (*TransactionReceipt, error) {
	signedTx, err := BuildInitializeTransaction(c.programId, counterKey, user)
	if err != nil {
		return nil, err
	}
	return c.SendTransaction(ctx, signedTx)
}

func (c *Client) Increment(ctx context.Context, counterAddress protocol.Address, user signer.TransactionSigner) (*TransactionReceipt, error) {
	return c.sendCounterTransaction(ctx, counter.METHOD_INCREMENT, counterAddress, user)
}

func (c *Client) Decrement(ctx context.Context, counterAddress protocol.Address, user signer.TransactionSigner) (*TransactionReceipt, error) {
	return c.sendCounterTransaction(ctx, counter.METHOD_DECREMENT, counterAddress, user)
}

func (c *Client) sendCounterTransaction(ctx context.Context, method primitives.MethodName, counterAddress protocol.Address, user signer.TransactionSigner) (*TransactionReceipt, error) {
	signedTx, err := BuildCounterTransaction(c.programId, method, counterAddress, user)
	if err != nil {
		return nil, err
	}
	return c.SendTransaction(ctx, signedTx)
}

// SendTransaction returns the receipt also for rejected transactions; err is set only when no receipt was received
func (c *Client) SendTransaction(ctx context.Context, signedTx *protocol.SignedTransaction) (*TransactionReceipt, error) {
	body, err := json.Marshal(FromSignedTransaction(signedTx))
	if err != nil {
		return nil, errors.Wrap(err, "failed encoding transaction")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+SEND_TRANSACTION_PATH, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	receipt := &TransactionReceipt{}
	if err := c.do(req, receipt); err != nil {
		return nil, err
	}
	return receipt, nil
}

func (c *Client) GetCounter(ctx context.Context, counterAddress protocol.Address) (*Counter, error) {
	out := &Counter{}
	if err := c.get(ctx, GET_COUNTER_PATH+encoding.EncodeHex(counterAddress), out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetAccount(ctx context.Context, address protocol.Address) (*Account, error) {
	out := &Account{}
	if err := c.get(ctx, GET_ACCOUNT_PATH+encoding.EncodeHex(address), out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

// do decodes out from any response that carries it; send-transaction answers rejections with a non-2xx code and a receipt
func (c *Client) do(req *http.Request, out interface{}) error {
	res, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "failed calling %s", req.URL)
	}
	defer res.Body.Close()

	body, err := ioutil.ReadAll(res.Body)
	if err != nil {
		return errors.Wrap(err, "failed reading response body")
	}

	if res.StatusCode == http.StatusNotFound {
		return errors.Wrap(ErrNotFound, errorMessage(res, body))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return errors.Wrap(err, errorMessage(res, body))
	}

	if res.StatusCode >= http.StatusBadRequest && !isReceipt(out) {
		return errors.New(errorMessage(res, body))
	}

	return nil
}

func isReceipt(out interface{}) bool {
	receipt, ok := out.(*TransactionReceipt)
	return ok && receipt.TransactionStatus != ""
}

func errorMessage(res *http.Response, body []byte) string {
	errOutput := &ErrorOutput{}
	if err := json.Unmarshal(body, errOutput); err == nil && errOutput.Error != "" {
		return fmt.Sprintf("http status %d: %s", res.StatusCode, errOutput.Error)
	}
	return fmt.Sprintf("http status %d", res.StatusCode)
}
