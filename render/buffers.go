package render

// VertexBuffer is an array buffer filled once with vertex data.
type VertexBuffer struct {
	ctx *Context
	id  uint32
}

func NewVertexBuffer(ctx *Context, vertices []float32) (*VertexBuffer, error) {
	id, err := newBuffer(ctx, ArrayBuffer, len(vertices)*Float.Size(), vertices)
	if err != nil {
		return nil, err
	}
	return &VertexBuffer{ctx: ctx, id: id}, nil
}

func (vb *VertexBuffer) ID() uint32 {
	return vb.id
}

func (vb *VertexBuffer) Bind() error {
	return vb.ctx.BindBuffer(ArrayBuffer, vb.id)
}

func (vb *VertexBuffer) Unbind() error {
	return vb.ctx.BindBuffer(ArrayBuffer, 0)
}

func (vb *VertexBuffer) Delete() error {
	return deleteBuffer(vb.ctx, &vb.id)
}

// IndexBuffer holds uint32 triangle indices.
type IndexBuffer struct {
	ctx   *Context
	id    uint32
	count int32
}

func NewIndexBuffer(ctx *Context, indices []uint32) (*IndexBuffer, error) {
	id, err := newBuffer(ctx, ElementArrayBuffer, len(indices)*UnsignedInt.Size(), indices)
	if err != nil {
		return nil, err
	}
	return &IndexBuffer{ctx: ctx, id: id, count: int32(len(indices))}, nil
}

func (ib *IndexBuffer) ID() uint32 {
	return ib.id
}

// Count is the number of indices, as passed to DrawElements.
func (ib *IndexBuffer) Count() int32 {
	return ib.count
}

func (ib *IndexBuffer) Bind() error {
	return ib.ctx.BindBuffer(ElementArrayBuffer, ib.id)
}

func (ib *IndexBuffer) Unbind() error {
	return ib.ctx.BindBuffer(ElementArrayBuffer, 0)
}

func (ib *IndexBuffer) Delete() error {
	return deleteBuffer(ib.ctx, &ib.id)
}

func newBuffer(ctx *Context, target BufferTarget, size int, data interface{}) (uint32, error) {
	id, err := ctx.Driver.GenBuffer()
	if err != nil {
		return 0, err
	}
	if err := ctx.BindBuffer(target, id); err != nil {
		ctx.Driver.DeleteBuffer(id)
		return 0, err
	}
	if err := ctx.Driver.BufferData(target, size, data); err != nil {
		ctx.forgetBuffer(id)
		ctx.Driver.DeleteBuffer(id)
		return 0, err
	}
	return id, nil
}

func deleteBuffer(ctx *Context, id *uint32) error {
	if *id == 0 {
		return nil
	}
	buffer := *id
	*id = 0
	ctx.forgetBuffer(buffer)
	return ctx.Driver.DeleteBuffer(buffer)
}
