// Package web provides a display driver that streams frames to
// websocket clients.
package web

import (
	"encoding/binary"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"

	"github.com/cespare/xxhash"
	"github.com/google/brotli/go/cbrotli"
	"github.com/gorilla/websocket"
	"github.com/thelolagemann/beef/pkg/display"
)

const headerSize = 6

func init() {
	driver := &Driver{}
	display.Install("web", driver, []display.DriverOption{
		{
			Name:        "addr",
			Default:     ":8090",
			Value:       &driver.Addr,
			Type:        "string",
			Description: "Address the websocket server listens on",
		},
		{
			Name:        "compress",
			Default:     true,
			Value:       &driver.Compress,
			Type:        "bool",
			Description: "Compress frames with brotli",
		},
		{
			Name:        "level",
			Default:     5,
			Value:       &driver.Level,
			Type:        "int",
			Description: "Brotli compression level (0-11)",
		},
	})
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024 * 16,
	WriteBufferSize: 1024 * 16,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Driver serves frames over a websocket at /ws. Every client
// receives every frame it can keep up with, a frame identical to
// the previous one is sent as a single FrameRepeat byte to clients
// that already hold it.
type Driver struct {
	Addr     string
	Compress bool
	Level    int

	hub      *hub
	server   *http.Server
	listener net.Listener
	cache    *cache
	lastHash uint64
	last     []byte // encoded message of the last frame

	errs     chan error
	serveErr error
	mu       sync.Mutex
}

// Start listens on Addr and serves clients in the background.
func (d *Driver) Start(_ string, _, _ int) error {
	l, err := net.Listen("tcp", d.Addr)
	if err != nil {
		return fmt.Errorf("web: %w", err)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.listener = l
	d.hub = newHub()
	d.cache = newCache(16)
	d.last, d.serveErr = nil, nil
	d.errs = make(chan error, 1)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", d.serveWS)
	d.server = &http.Server{Handler: mux}

	go func() {
		if err := d.server.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
			d.errs <- err
		}
	}()

	return nil
}

// ListenAddr returns the address the server is listening on, or
// nil if the driver hasn't been started.
func (d *Driver) ListenAddr() net.Addr {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.listener == nil {
		return nil
	}
	return d.listener.Addr()
}

func (d *Driver) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return // upgrader has already replied
	}

	c := &Client{hub: d.hub, conn: conn, Send: make(chan []byte, 8), needsFrame: true}
	d.hub.register(c)

	go c.WritePump()
	go c.ReadPump()
}

// Present encodes the frame and broadcasts it to every client. A
// failure of the server is returned on every following call.
func (d *Driver) Present(fb []uint32, width, height int) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.server == nil {
		return display.ErrClosed
	}
	if d.serveErr == nil {
		select {
		case err := <-d.errs:
			d.serveErr = fmt.Errorf("web: serving: %w", err)
		default:
		}
	}
	if d.serveErr != nil {
		return d.serveErr
	}

	pixels := display.RGB(fb)
	hash := frameHash(pixels, width, height)
	if d.last != nil && hash == d.lastHash {
		d.hub.broadcast(d.last, []byte{FrameRepeat})
		return nil
	}

	message, err := d.encode(hash, pixels, width, height)
	if err != nil {
		return err
	}
	d.hub.broadcast(message, nil)
	d.lastHash, d.last = hash, message

	return nil
}

// frameHash identifies a frame by its pixels and dimensions.
func frameHash(pixels []byte, width, height int) uint64 {
	var dims [4]byte
	binary.LittleEndian.PutUint16(dims[0:], uint16(width))
	binary.LittleEndian.PutUint16(dims[2:], uint16(height))

	h := xxhash.New()
	h.Write(dims[:])
	h.Write(pixels)
	return h.Sum64()
}

func (d *Driver) encode(hash uint64, pixels []byte, width, height int) ([]byte, error) {
	if message, ok := d.cache.get(hash); ok {
		return message, nil
	}

	var flags Flags
	payload := pixels
	if d.Compress {
		var err error
		payload, err = cbrotli.Encode(pixels, cbrotli.WriterOptions{
			Quality: d.Level,
		})
		if err != nil {
			return nil, fmt.Errorf("web: compressing frame: %w", err)
		}
		flags |= Compressed
	}

	message := make([]byte, headerSize+len(payload))
	message[0] = Frame
	message[1] = flags
	binary.LittleEndian.PutUint16(message[2:], uint16(width))
	binary.LittleEndian.PutUint16(message[4:], uint16(height))
	copy(message[headerSize:], payload)

	d.cache.add(hash, message)
	return message, nil
}

// Stop disconnects all clients and shuts the server down.
func (d *Driver) Stop() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.server == nil {
		return nil
	}
	d.hub.closeAll()
	err := d.server.Close()
	d.server, d.listener = nil, nil

	return err
}
