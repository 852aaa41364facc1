// Package fetch implements the Fetch(host, port, path) -> bytes contract
// (§4.1): any failure (connect error, non-2xx status, body read error,
// timeout) is swallowed and reported as empty bytes, so a single
// unreachable node never fails a whole scrape batch.
package fetch
