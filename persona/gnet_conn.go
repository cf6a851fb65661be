package persona

type connContext struct {
	buf []byte
}

func (c *connContext) append(p []byte) {
	c.buf = append(c.buf, p...)
}

func (c *connContext) reset() {
	c.buf = nil
}
