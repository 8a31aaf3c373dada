// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/gorilla/mux"
	cache "github.com/patrickmn/go-cache"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/pte-client/address"
	"github.com/bitmark-inc/pte-client/pte"
	"github.com/bitmark-inc/pte-client/transaction"
)

const (
	maximumBodySize = 1024 * 1024

	// a manifest line calling this creates one account component
	accountCreation = `"new_with_resource"`
)

// typed address literals in a manifest
var addressLiteral = regexp.MustCompile(`(Package|Component|Resource)Address\("([^"]*)"\)`)

var literalEntity = map[string]address.EntityType{
	"Package":   address.PackageEntity,
	"Component": address.ComponentEntity,
	"Resource":  address.ResourceEntity,
}

type server struct {
	nonces *cache.Cache // notary key and nonce of recent transactions
	log    *logger.L
}

// nonces are remembered for the window so a replay is refused
func newServer(window time.Duration, log *logger.L) *server {
	return &server{
		nonces: cache.New(window, window),
		log:    log,
	}
}

func (s *server) router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/transaction", s.submitTransaction).Methods(http.MethodPost)
	return r
}

func (s *server) submitTransaction(w http.ResponseWriter, r *http.Request) {
	data, err := ioutil.ReadAll(http.MaxBytesReader(w, r.Body, maximumBodySize))
	if nil != err {
		s.fail(w, http.StatusBadRequest, "read body error: %s", err)
		return
	}

	var body pte.TransactionBody
	if err := json.Unmarshal(data, &body); nil != err {
		s.fail(w, http.StatusBadRequest, "decode error: %s", err)
		return
	}

	if "" == strings.TrimSpace(body.Manifest) {
		s.fail(w, http.StatusBadRequest, "empty manifest")
		return
	}
	if err := checkAddresses(body.Manifest); nil != err {
		s.fail(w, http.StatusBadRequest, "manifest: %s", err)
		return
	}
	if 0 == len(body.Signatures) {
		s.fail(w, http.StatusBadRequest, "no signatures")
		return
	}
	for i, signature := range body.Signatures {
		if err := checkSignature(signature); nil != err {
			s.fail(w, http.StatusBadRequest, "signature[%d]: %s", i, err)
			return
		}
	}

	// the notary signature is last
	notary := body.Signatures[len(body.Signatures)-1].PublicKey
	key := notary + ":" + strconv.FormatUint(body.Nonce.Value, 10)
	if err := s.nonces.Add(key, struct{}{}, cache.DefaultExpiration); nil != err {
		s.fail(w, http.StatusConflict, "nonce: %d already used", body.Nonce.Value)
		return
	}

	receipt := execute(&body, sha3.Sum256(data))

	s.log.Infof("transaction: %s  nonce: %d  components: %d", receipt.TransactionHash, body.Nonce.Value, len(receipt.NewComponents))

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(receipt); nil != err {
		s.log.Errorf("encode receipt error: %s", err)
	}
}

func (s *server) fail(w http.ResponseWriter, status int, format string, arguments ...interface{}) {
	message := fmt.Sprintf(format, arguments...)
	s.log.Warnf("reject: %d  %s", status, message)
	http.Error(w, message, status)
}

// every address literal must carry the entity byte of its kind
func checkAddresses(manifest string) error {
	for _, match := range addressLiteral.FindAllStringSubmatch(manifest, -1) {
		entity, err := address.Entity(match[2])
		if nil != err {
			return fmt.Errorf("%sAddress(%q): %s", match[1], match[2], err)
		}
		if literalEntity[match[1]] != entity {
			return fmt.Errorf("%sAddress(%q): entity: 0x%02x", match[1], match[2], byte(entity))
		}
	}
	return nil
}

func checkSignature(signature pte.Signature) error {
	publicKey, err := hex.DecodeString(signature.PublicKey)
	if nil != err {
		return err
	}
	switch len(publicKey) {
	case transaction.EcdsaPublicKeySize, transaction.Ed25519PublicKeySize:
	default:
		return fmt.Errorf("public key length: %d", len(publicKey))
	}

	s, err := hex.DecodeString(signature.Signature)
	if nil != err {
		return err
	}
	if 0 == len(s) {
		return fmt.Errorf("empty signature")
	}
	return nil
}

// synthesise a successful receipt, one output per instruction and one
// new component for each account creation
func execute(body *pte.TransactionBody, hash [32]byte) *pte.Receipt {
	receipt := &pte.Receipt{
		TransactionHash: hex.EncodeToString(hash[:]),
		Status:          "Success",
		Outputs:         []string{},
		Logs:            []string{},
		NewPackages:     []string{},
		NewComponents:   []string{},
		NewResources:    []string{},
	}

	for _, line := range strings.Split(body.Manifest, "\n") {
		if "" == strings.TrimSpace(line) {
			continue
		}
		receipt.Outputs = append(receipt.Outputs, "()")

		if strings.Contains(line, accountCreation) {
			var component address.ComponentAddress
			component[0] = byte(address.ComponentEntity)
			copy(component[1:], hash[:address.Length-2])
			component[address.Length-1] = byte(len(receipt.NewComponents))
			receipt.NewComponents = append(receipt.NewComponents, component.String())
		}
	}
	return receipt
}
