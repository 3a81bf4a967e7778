package render

// VertexBufferElement describes one attribute inside an interleaved vertex.
type VertexBufferElement struct {
	Type       DataType
	Count      int32
	Normalized bool
}

// VertexBufferLayout lists the attributes of a vertex in order.
type VertexBufferLayout struct {
	elements []VertexBufferElement
	stride   int32
}

func NewVertexBufferLayout() *VertexBufferLayout {
	return &VertexBufferLayout{}
}

func (l *VertexBufferLayout) push(typ DataType, count int32, normalized bool) *VertexBufferLayout {
	l.elements = append(l.elements, VertexBufferElement{Type: typ, Count: count, Normalized: normalized})
	l.stride += count * int32(typ.Size())
	return l
}

func (l *VertexBufferLayout) PushFloat(count int32) *VertexBufferLayout {
	return l.push(Float, count, false)
}

func (l *VertexBufferLayout) PushUint(count int32) *VertexBufferLayout {
	return l.push(UnsignedInt, count, false)
}

// PushUbyte adds a normalized byte attribute, typically a packed color.
func (l *VertexBufferLayout) PushUbyte(count int32) *VertexBufferLayout {
	return l.push(UnsignedByte, count, true)
}

func (l *VertexBufferLayout) Elements() []VertexBufferElement {
	return l.elements
}

// Stride is the size in bytes of one vertex.
func (l *VertexBufferLayout) Stride() int32 {
	return l.stride
}

// VertexArray records the attribute setup of one or more vertex buffers.
type VertexArray struct {
	ctx *Context
	id  uint32

	nextAttrib uint32
}

func NewVertexArray(ctx *Context) (*VertexArray, error) {
	id, err := ctx.Driver.GenVertexArray()
	if err != nil {
		return nil, err
	}
	return &VertexArray{ctx: ctx, id: id}, nil
}

func (va *VertexArray) ID() uint32 {
	return va.id
}

// AddBuffer binds vb into this vertex array and enables one attribute per
// layout element, continuing after attributes added by earlier calls.
func (va *VertexArray) AddBuffer(vb *VertexBuffer, layout *VertexBufferLayout) error {
	if err := va.Bind(); err != nil {
		return err
	}
	if err := vb.Bind(); err != nil {
		return err
	}

	offset := 0
	for _, element := range layout.Elements() {
		index := va.nextAttrib
		if err := va.ctx.Driver.EnableVertexAttribArray(index); err != nil {
			return err
		}
		if err := va.ctx.Driver.VertexAttribPointer(index, element.Count, element.Type, element.Normalized, layout.Stride(), offset); err != nil {
			return err
		}
		offset += int(element.Count) * element.Type.Size()
		va.nextAttrib++
	}
	return nil
}

func (va *VertexArray) Bind() error {
	return va.ctx.BindVertexArray(va.id)
}

func (va *VertexArray) Unbind() error {
	return va.ctx.BindVertexArray(0)
}

func (va *VertexArray) Delete() error {
	if va.id == 0 {
		return nil
	}
	id := va.id
	va.id = 0
	va.ctx.forgetVertexArray(id)
	return va.ctx.Driver.DeleteVertexArray(id)
}
