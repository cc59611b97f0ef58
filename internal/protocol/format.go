// Copyright (C) 2026 memkv contributors.
// All rights reserved. This file is part of memkv.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package protocol

import (
	"bufio"
	"strconv"
)

// WriteResponse serializes a Response to its exact memcached ASCII wire
// form and flushes it. The caller owns when to call this — ShouldReply is
// consulted by the connection handler, not here.
func WriteResponse(w *bufio.Writer, resp Response) error {
	switch r := resp.(type) {
	case DataResponse:
		writeItems(w, r.Items, false)
	case GetsResponse:
		writeItems(w, r.Items, true)
	case IncrResponse:
		w.WriteString(strconv.FormatUint(r.Value, 10))
		w.WriteString("\r\n")
	case DeletedResponse:
		w.WriteString("DELETED\r\n")
	case TouchedResponse:
		w.WriteString("TOUCHED\r\n")
	case OkResponse:
		w.WriteString("OK\r\n")
	case StoredResponse:
		w.WriteString("STORED\r\n")
	case NotStoredResponse:
		w.WriteString("NOT_STORED\r\n")
	case ExistsResponse:
		w.WriteString("EXISTS\r\n")
	case NotFoundResponse:
		w.WriteString("NOT_FOUND\r\n")
	case ErrorResponse:
		w.WriteString("ERROR\r\n")
	case ClientErrorResponse:
		w.WriteString("CLIENT_ERROR ")
		w.WriteString(r.Message)
		w.WriteString("\r\n")
	case ServerErrorResponse:
		w.WriteString("SERVER_ERROR ")
		w.WriteString(r.Message)
		w.WriteString("\r\n")
	case TooBigResponse:
		w.WriteString("SERVER_ERROR object too large for cache\r\n")
	case VersionResponse:
		w.WriteString("VERSION ")
		w.WriteString(r.Name)
		w.WriteString(" ")
		w.WriteString(r.Version)
		w.WriteString("\r\n")
	}
	return w.Flush()
}

func writeItems(w *bufio.Writer, items []Item, withUnique bool) {
	for _, it := range items {
		w.WriteString("VALUE ")
		w.Write(it.Key)
		w.WriteString(" ")
		w.WriteString(strconv.FormatUint(uint64(it.Flags), 10))
		w.WriteString(" ")
		w.WriteString(strconv.Itoa(len(it.Data)))
		if withUnique {
			w.WriteString(" ")
			w.WriteString(strconv.FormatUint(it.Unique, 10))
			w.WriteString(" ")
		}
		w.WriteString("\r\n")
		w.Write(it.Data)
		w.WriteString("\r\n")
	}
	w.WriteString("END\r\n")
}
