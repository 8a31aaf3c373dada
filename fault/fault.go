// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAddressLength         = LengthError("address length is invalid")
	ErrAmountNotPositive     = InvalidError("amount must be greater than zero")
	ErrBucketAlreadyUsed     = InvalidError("bucket already consumed")
	ErrBucketNotFound        = NotFoundError("bucket not found")
	ErrChecksumMismatch      = InvalidError("checksum mismatch")
	ErrConfigurationNotTable = InvalidError("configuration must return a table")
	ErrDuplicateSigner       = ExistsError("duplicate signer")
	ErrEmptyManifest         = InvalidError("manifest has no instructions")
	ErrInvalidAddress        = InvalidError("invalid address")
	ErrInvalidDecimal        = InvalidError("invalid decimal")
	ErrInvalidEpochWindow    = InvalidError("invalid epoch window")
	ErrInvalidKeyType        = InvalidError("invalid key type")
	ErrInvalidNetworkID      = InvalidError("invalid network id")
	ErrInvalidPublicKey      = InvalidError("invalid public key")
	ErrInvalidSeed           = InvalidError("invalid seed")
	ErrInvalidSignature      = InvalidError("invalid signature")
	ErrKeyLength             = LengthError("key length is invalid")
	ErrMissingNotary         = InvalidError("notary is required")
	ErrMissingTransaction    = InvalidError("transaction is required")
	ErrMultipleNonceFound    = InvalidError("multiple nonce instructions found")
	ErrNegativeValue         = InvalidError("value must not be negative")
	ErrNilKeyPair            = ProcessError("internal error: nil key pair")
	ErrNoAccountCreated      = NotFoundError("no account component in receipt")
	ErrNoNonceFound          = NotFoundError("no nonce instruction found")
	ErrNotaryKeyMismatch     = InvalidError("notary key does not match header")
	ErrNotEnoughRandomBytes  = ProcessError("not enough random bytes")
	ErrRateLimiting          = ProcessError("rate limiting")
	ErrRequiredKey           = InvalidError("key is required")
	ErrRequiredURL           = InvalidError("url is required")
	ErrSeedLength            = LengthError("seed length is invalid")
	ErrUnknownInstruction    = InvalidError("unknown instruction")
	ErrUnknownValue          = InvalidError("unknown value kind")
	ErrWrongEntityType       = InvalidError("address has wrong entity type")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
