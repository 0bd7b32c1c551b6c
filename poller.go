package starkgate

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// WaitForTransaction polls the transaction's status until the network
// reports a decisive outcome, then returns the final observed status.
//
// Each cycle sleeps for the configured poll interval, then performs exactly
// one status query; queries are strictly sequential. The transitions are:
//
//   - ACCEPTED_ONCHAIN or PENDING: confirmed, returns with a nil error.
//   - REJECTED: returns a *RejectedError carrying the server's reason text.
//   - NOT_RECEIVED: forgiven once on the very first cycle, since the network
//     may not have indexed the transaction yet. On any later cycle it
//     returns a *UnreachableError - the transaction is presumed dropped.
//   - RECEIVED or any unknown status: keep waiting.
//
// There is no upper bound on the number of cycles while the network keeps
// reporting RECEIVED; cancel ctx to abandon the wait. A transport failure
// during a status query propagates as *GatewayError without being retried.
func (c *Client) WaitForTransaction(ctx context.Context, txHash Felt) (TransactionStatus, error) {
	firstRun := true

	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(c.pollInterval):
		}

		resp, err := c.TransactionStatus(ctx, txHash)
		if err != nil {
			return "", err
		}

		status := resp.TxStatus
		c.logger.Debug("polled transaction status",
			zap.String("tx_hash", txHash.Hex()),
			zap.String("status", string(status)),
			zap.Bool("first_run", firstRun))

		graceCycle := firstRun
		firstRun = false

		switch status {
		case StatusAcceptedOnChain, StatusPending:
			c.logger.Info("transaction confirmed",
				zap.String("tx_hash", txHash.Hex()),
				zap.String("status", string(status)))
			return status, nil

		case StatusRejected:
			return status, &RejectedError{Hash: txHash, Reason: rejectionReason(resp)}

		case StatusNotReceived:
			if graceCycle {
				continue
			}
			return status, &UnreachableError{Hash: txHash}

		default:
			// RECEIVED and anything the server adds later: keep waiting.
		}
	}
}

// rejectionReason extracts the literal reason text from a status response.
func rejectionReason(resp *TransactionStatusResponse) string {
	if resp.TxFailureReason == nil {
		return ""
	}
	if resp.TxFailureReason.ErrorMessage != "" {
		return resp.TxFailureReason.ErrorMessage
	}
	return resp.TxFailureReason.Code
}
