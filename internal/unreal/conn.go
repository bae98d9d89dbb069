package unreal

import (
	"context"
	"fmt"
	"net"
	"time"
)

const (
	// DefaultAddr is where the editor plugin listens.
	DefaultAddr = "127.0.0.1:55557"

	// commandTimeout bounds a full dial/send/receive cycle. Large
	// procedural commands can take the engine a while to acknowledge.
	commandTimeout = 30 * time.Second

	socketBufferSize = 64 * 1024
	readChunkSize    = 8 * 1024
)

// dial opens a TCP connection to the plugin tuned for the command
// protocol: small latency-sensitive writes followed by a single read.
func dial(ctx context.Context, addr string) (net.Conn, error) {
	d := net.Dialer{Timeout: commandTimeout}
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("dial engine %s: %w", addr, err)
	}

	if tcp, ok := conn.(*net.TCPConn); ok {
		tcp.SetNoDelay(true)
		tcp.SetKeepAlive(true)
		tcp.SetReadBuffer(socketBufferSize)
		tcp.SetWriteBuffer(socketBufferSize)
	}

	deadline := time.Now().Add(commandTimeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err := conn.SetDeadline(deadline); err != nil {
		conn.Close()
		return nil, fmt.Errorf("set deadline: %w", err)
	}

	return conn, nil
}
