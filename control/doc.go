// Package control implements the cooperative cancellation protocol a
// timeout-bounded supervisor uses to stop a crawler and still retain its
// best-so-far result (§4.6, §5).
//
// Two independent one-way signals make up the protocol:
//
//   - CancelFlag: supervisor -> crawler. One writer, one reader, polled
//     at the top of every crawler iteration (worst-case one-step latency).
//   - Signal: crawler -> supervisor. A one-shot "I am done" notice; the
//     supervisor blocks on it with a bounded timeout.
//
// Supervisor wires the two together: it starts the crawl on a background
// goroutine, waits for either Signal or the timeout, and on timeout sets
// the CancelFlag before joining.
package control
