// Package remote implements the TCP wire protocol that lets an
// out-of-process system under test answer classify requests: a
// length-prefixed handshake, fixed-size binary point/response exchange,
// and newline-delimited ASCII control messages. The protocol is strictly
// synchronous — one request, one response — per connection.
package remote

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"net"

	"github.com/toazbenj/sembas-go/classifier"
	"github.com/toazbenj/sembas-go/geometry"
	"github.com/toazbenj/sembas-go/sample"
	"github.com/toazbenj/sembas-go/sembaserr"
)

var _ classifier.Classifier = (*Classifier)(nil)

// Classifier bridges the exploration engine to a single connected remote
// SUT. The underlying socket is owned exclusively by the Classifier; no
// concurrent Classify calls are safe. All reads go through r so that a
// Session layered on top can interleave control-message reads without
// stranding classify-response bytes in a second, independent buffer.
type Classifier struct {
	conn net.Conn
	r    *bufio.Reader
	dim  int
	buf  []byte // reused 8*dim point-exchange buffer
}

// Listen accepts exactly one connection on addr, performs the dimension
// handshake, and returns a ready-to-use Classifier. The listener itself is
// closed once a connection is accepted — this protocol serves one client
// per Classifier.
func Listen(addr string, dim int) (*Classifier, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	defer ln.Close()

	conn, err := ln.Accept()
	if err != nil {
		return nil, err
	}

	r := bufio.NewReader(conn)
	if err := handshake(conn, r, dim); err != nil {
		conn.Close()
		return nil, err
	}

	return &Classifier{conn: conn, r: r, dim: dim, buf: make([]byte, 8*dim)}, nil
}

// handshake reads the client's 8-byte big-endian dimension count and
// either tears down the connection with the server's expected dimension
// on mismatch, or writes "OK\n" on match.
func handshake(conn net.Conn, r *bufio.Reader, dim int) error {
	var clientDimBytes [8]byte
	if _, err := io.ReadFull(r, clientDimBytes[:]); err != nil {
		return err
	}
	clientDim := binary.BigEndian.Uint64(clientDimBytes[:])

	if int(clientDim) != dim {
		fmt.Fprintf(conn, "%d\n", dim)
		return sembaserr.NewInvalidClassifierResponse(
			"remote: dimension mismatch: server expects %d, client sent %d", dim, clientDim)
	}

	_, err := conn.Write([]byte("OK\n"))
	return err
}

// Classify writes p as dim little-endian f64 coordinates and reads back a
// single class byte: 0x00 for OutOfMode, 0x01 for WithinMode. Any other
// byte is an InvalidClassifierResponse.
func (c *Classifier) Classify(p geometry.Vector) (sample.Sample, error) {
	if p.Dim() != c.dim {
		return nil, sembaserr.NewInvalidClassifierResponse(
			"remote: point has dimension %d, session configured for %d", p.Dim(), c.dim)
	}

	for i := 0; i < c.dim; i++ {
		binary.LittleEndian.PutUint64(c.buf[i*8:], math.Float64bits(p.At(i)))
	}
	if _, err := c.conn.Write(c.buf); err != nil {
		return nil, err
	}

	var respByte [1]byte
	if _, err := io.ReadFull(c.r, respByte[:]); err != nil {
		return nil, err
	}

	switch respByte[0] {
	case 0x00:
		return sample.OutOfMode{P: p}, nil
	case 0x01:
		return sample.WithinMode{P: p}, nil
	default:
		return nil, sembaserr.NewInvalidClassifierResponse("remote: invalid class byte 0x%02x", respByte[0])
	}
}

// Close sends the "end\n" teardown signal and closes the connection.
func (c *Classifier) Close() error {
	fmt.Fprint(c.conn, "end\n")
	return c.conn.Close()
}
