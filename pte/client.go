// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pte

import (
	"bytes"
	"encoding/json"
	"io"
	"io/ioutil"
	"net/http"
	"strings"

	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/pte-client/fault"
	"github.com/bitmark-inc/pte-client/transaction"
)

// path of the submission call relative to the endpoint
const transactionPath = "/transaction"

// Client - submits transactions to one test network endpoint
type Client struct {
	url       string
	transport Transport
	limiter   *rate.Limiter
	handle    io.Writer // if set, requests and replies are printed here
	log       *logger.L
}

// New - create a client for an endpoint such as
// "https://pte01.radixdlt.com"
func New(endpoint string, transport Transport, log *logger.L) *Client {
	if nil == log {
		log = logger.New("pte")
	}
	return &Client{
		url:       strings.TrimSuffix(endpoint, "/") + transactionPath,
		transport: transport,
		log:       log,
	}
}

// SetLimiter - delay submissions to the limiter's rate
func (client *Client) SetLimiter(limiter *rate.Limiter) {
	client.limiter = limiter
}

// SetVerbose - print request and reply bodies to a writer, nil to stop
func (client *Client) SetVerbose(handle io.Writer) {
	client.handle = handle
}

// Submit - send a notarized transaction and return the receipt
//
// any returned error is a *SubmissionError
func (client *Client) Submit(tx *transaction.Notarized) (*Receipt, error) {
	if nil == tx {
		return nil, submissionError(KindDecompile, fault.ErrMissingTransaction)
	}

	body, err := NewTransactionBody(tx)
	if nil != err {
		client.log.Errorf("decompile error: %s", err)
		return nil, submissionError(KindDecompile, err)
	}

	client.log.Infof("submit: nonce: %d  signatures: %d", body.Nonce.Value, len(body.Signatures))

	return client.post(body)
}

// SubmitLegacy - upgrade an instruction stream that carries its nonce
// as an instruction, then sign, notarize and submit it
//
// the header nonce is replaced by the value from the instructions
func (client *Client) SubmitLegacy(instructions []transaction.Instruction, header transaction.Header, notary transaction.Signer, signers ...transaction.Signer) (*Receipt, error) {
	intent, err := transaction.FromLegacy(instructions, header)
	switch {
	case fault.ErrNoNonceFound == err:
		return nil, submissionError(KindNoNonceFound, err)
	case fault.ErrMultipleNonceFound == err:
		return nil, submissionError(KindMultipleNonceFound, err)
	case nil != err:
		return nil, submissionError(KindDecompile, err)
	}

	tx, err := transaction.Build(intent.Header, intent.Manifest, notary, signers...)
	if nil != err {
		client.log.Errorf("legacy build error: %s", err)
		return nil, submissionError(KindDecompile, err)
	}
	return client.Submit(tx)
}

// exactly one request, never retried
func (client *Client) post(body *TransactionBody) (*Receipt, error) {
	if err := limit(client.limiter); nil != err {
		client.log.Warnf("rate limited: %s", err)
		return nil, submissionError(KindHTTPRequest, err)
	}

	buffer, err := json.Marshal(body)
	if nil != err {
		return nil, submissionError(KindHTTPRequest, err)
	}

	client.log.Debugf("request: %s", buffer)
	if err := client.printJson("Transaction Request", body); nil != err {
		client.log.Warnf("print request error: %s", err)
	}

	request, err := http.NewRequest(http.MethodPost, client.url, bytes.NewReader(buffer))
	if nil != err {
		return nil, submissionError(KindHTTPRequest, err)
	}
	request.Header.Set("Content-Type", "application/json")

	response, err := client.transport.Do(request)
	if nil != err {
		client.log.Errorf("post: %q  error: %s", client.url, err)
		return nil, submissionError(KindHTTPRequest, err)
	}
	defer response.Body.Close()

	data, err := ioutil.ReadAll(response.Body)
	if nil != err {
		return nil, submissionError(KindHTTPRequest, err)
	}

	if response.StatusCode < 200 || response.StatusCode > 299 {
		client.log.Errorf("post: %q  status: %d", client.url, response.StatusCode)
		return nil, submissionError(KindHTTPRequest, &HTTPError{
			StatusCode: response.StatusCode,
			Status:     response.Status,
			Body:       string(data),
		})
	}

	var receipt Receipt
	err = json.Unmarshal(data, &receipt)
	if nil != err {
		client.log.Errorf("response: %q  error: %s", data, err)
		return nil, submissionError(KindResponse, err)
	}

	client.log.Infof("transaction: %s  status: %s", receipt.TransactionHash, receipt.Status)
	if err := client.printJson("Transaction Reply", receipt); nil != err {
		client.log.Warnf("print reply error: %s", err)
	}

	return &receipt, nil
}
