// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package virtualmachine

import (
	"fmt"
	"github.com/orbs-network/orbs-counter-go/crypto/digest"
	"github.com/orbs-network/orbs-counter-go/crypto/signature"
	"github.com/orbs-network/orbs-counter-go/protocol"
	"github.com/orbs-network/orbs-spec/types/go/primitives"
	"github.com/pkg/errors"
)

type ErrTransactionRejected struct {
	status protocol.TransactionStatus
	reason string
}

func (e *ErrTransactionRejected) Error() string {
	return fmt.Sprintf("transaction rejected: %s (%s)", e.status, e.reason)
}

func (e *ErrTransactionRejected) receipt(txHash primitives.Sha256) *protocol.TransactionReceipt {
	return &protocol.TransactionReceipt{
		Txhash:            txHash,
		TransactionStatus: e.status,
		ExecutionResult:   protocol.EXECUTION_RESULT_NOT_EXECUTED,
		ErrorMessage:      e.reason,
	}
}

func rejected(status protocol.TransactionStatus) *ErrTransactionRejected {
	return &ErrTransactionRejected{status: status, reason: status.String()}
}

func rejectedf(status protocol.TransactionStatus, format string, args ...interface{}) *ErrTransactionRejected {
	return &ErrTransactionRejected{status: status, reason: fmt.Sprintf(format, args...)}
}

func (s *service) validateTransaction(signedTx *protocol.SignedTransaction, txHash primitives.Sha256) *ErrTransactionRejected {
	tx := signedTx.Transaction
	now := primitives.TimestampNano(s.now().UnixNano())

	if err := validateProtocolVersion(tx); err != nil {
		return err
	}
	if err := validateTransactionNotExpired(tx, now, s.config.TransactionExpirationWindow().Nanoseconds()); err != nil {
		return err
	}
	if err := validateTransactionNotInFuture(tx, now, s.config.TransactionFutureGrace().Nanoseconds()); err != nil {
		return err
	}
	if err := validateAccountList(tx); err != nil {
		return err
	}
	return validateSignatures(signedTx, txHash)
}

func validateProtocolVersion(tx *protocol.Transaction) *ErrTransactionRejected {
	if tx.ProtocolVersion != protocol.CURRENT_PROTOCOL_VERSION {
		return rejectedf(protocol.TRANSACTION_STATUS_REJECTED_UNSUPPORTED_VERSION, "expected protocol version %d but got %d", protocol.CURRENT_PROTOCOL_VERSION, tx.ProtocolVersion)
	}
	return nil
}

func validateTransactionNotExpired(tx *protocol.Transaction, now primitives.TimestampNano, expiryWindow int64) *ErrTransactionRejected {
	threshold := now - primitives.TimestampNano(expiryWindow)
	if tx.Timestamp < threshold {
		return rejectedf(protocol.TRANSACTION_STATUS_REJECTED_TIMESTAMP_WINDOW_EXCEEDED, "timestamp %d is older than %d", tx.Timestamp, threshold)
	}
	return nil
}

func validateTransactionNotInFuture(tx *protocol.Transaction, now primitives.TimestampNano, futureGrace int64) *ErrTransactionRejected {
	tsWithGrace := now + primitives.TimestampNano(futureGrace)
	if tx.Timestamp > tsWithGrace {
		return rejectedf(protocol.TRANSACTION_STATUS_REJECTED_TIMESTAMP_AHEAD_OF_NODE, "timestamp %d is later than %d", tx.Timestamp, tsWithGrace)
	}
	return nil
}

func validateAccountList(tx *protocol.Transaction) *ErrTransactionRejected {
	seen := make(map[string]bool, len(tx.Accounts))
	for i, account := range tx.Accounts {
		if !account.Address.IsValid() {
			return rejectedf(protocol.TRANSACTION_STATUS_REJECTED_MALFORMED_ACCOUNT_LIST, "account %d has an invalid address", i)
		}
		if seen[account.Address.KeyForMap()] {
			return rejectedf(protocol.TRANSACTION_STATUS_REJECTED_MALFORMED_ACCOUNT_LIST, "account %s is listed more than once", account.Address)
		}
		seen[account.Address.KeyForMap()] = true
	}
	return nil
}

// validateSignatures verifies every signature over the transaction hash and requires one for every account flagged as signer
func validateSignatures(signedTx *protocol.SignedTransaction, txHash primitives.Sha256) *ErrTransactionRejected {
	if len(signedTx.Signatures) == 0 {
		return rejectedf(protocol.TRANSACTION_STATUS_REJECTED_MISSING_SIGNATURE, "transaction has no signatures")
	}

	signers := make(map[string]bool, len(signedTx.Signatures))
	for _, sig := range signedTx.Signatures {
		address, err := digest.CalcSignerAddress(sig.Signer)
		if errors.Cause(err) == digest.ErrUnknownSignerScheme {
			return rejectedf(protocol.TRANSACTION_STATUS_REJECTED_UNKNOWN_SIGNER_SCHEME, "%s", err)
		}
		if err != nil {
			return rejectedf(protocol.TRANSACTION_STATUS_REJECTED_SIGNATURE_MISMATCH, "%s", err)
		}

		if !verifySignature(sig, txHash) {
			return rejectedf(protocol.TRANSACTION_STATUS_REJECTED_SIGNATURE_MISMATCH, "signature of %s does not match the transaction", address)
		}
		signers[address.KeyForMap()] = true
	}

	for _, account := range signedTx.Transaction.Accounts {
		if account.IsSigner && !signers[account.Address.KeyForMap()] {
			return rejectedf(protocol.TRANSACTION_STATUS_REJECTED_MISSING_SIGNATURE, "account %s is flagged as signer but did not sign", account.Address)
		}
	}
	return nil
}

func verifySignature(sig protocol.TransactionSignature, txHash primitives.Sha256) bool {
	switch sig.Signer.Scheme {
	case protocol.SIGNER_SCHEME_EDDSA:
		return signature.VerifyEd25519(sig.Signer.PublicKey, txHash, sig.Signature)
	case protocol.SIGNER_SCHEME_ECDSA_SECP256K1:
		return signature.VerifyEcdsaSecp256K1(sig.Signer.PublicKey, txHash, sig.Signature)
	}
	return false
}
