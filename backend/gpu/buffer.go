package gpu

import (
	"fmt"

	"github.com/gogpu/gfx"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// copyBufferAlignment is the copy alignment hal requires on buffer sizes.
const copyBufferAlignment = 4

func bufferUsage(role gfx.BufferRole) gputypes.BufferUsage {
	switch role {
	case gfx.RoleIndex:
		return gputypes.BufferUsageIndex | gputypes.BufferUsageCopyDst
	case gfx.RoleUniform:
		return gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst
	default:
		return gputypes.BufferUsageVertex | gputypes.BufferUsageCopyDst
	}
}

// CreateBufferStatic implements gfx.Device. The buffer is created at
// the hal copy alignment and filled through the queue.
func (d *Device) CreateBufferStatic(data []byte, role gfx.BufferRole) (*gfx.Buffer, error) {
	alignedSize := (uint64(len(data)) + copyBufferAlignment - 1) &^ uint64(copyBufferAlignment-1)
	if alignedSize == 0 {
		alignedSize = copyBufferAlignment
	}

	buf, err := d.device.CreateBuffer(&hal.BufferDescriptor{
		Label: fmt.Sprintf("%s_%s_buffer", d.label, role),
		Size:  alignedSize,
		Usage: bufferUsage(role),
	})
	if err != nil {
		return nil, fmt.Errorf("gpu: create %s buffer: %w", role, err)
	}
	if len(data) > 0 {
		d.queue.WriteBuffer(buf, 0, data)
	}

	dev := d.device
	return gfx.NewBuffer(buf, role, len(data), func() {
		dev.DestroyBuffer(buf)
	}), nil
}
