package gpu

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"github.com/nfnt/resize"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// TextureOption adjusts how an image is prepared before upload.
type TextureOption func(*textureOptions)

type textureOptions struct {
	maxSize int
}

// MaxSize downscales images wider or taller than n, preserving aspect ratio.
func MaxSize(n int) TextureOption {
	return func(o *textureOptions) { o.maxSize = n }
}

// Texture owns a 2D texture with repeat wrapping, nearest filtering and
// generated mipmaps.
type Texture struct {
	object
}

// LoadTexture decodes the image file at path into a texture.
func LoadTexture(ctx Context, path string, opts ...TextureOption) (*Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gpu: open texture: %w", err)
	}
	defer f.Close()
	return DecodeTexture(ctx, f, opts...)
}

// DecodeTexture decodes an encoded image from r into a texture.
func DecodeTexture(ctx Context, r io.Reader, opts ...TextureOption) (*Texture, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("gpu: decode texture: %w", err)
	}
	return NewTexture(ctx, img, opts...)
}

// NewTexture uploads img with its rows flipped so the first row of img lands
// at texture coordinate t=1.
func NewTexture(ctx Context, img image.Image, opts ...TextureOption) (*Texture, error) {
	var o textureOptions
	for _, opt := range opts {
		opt(&o)
	}

	if n := uint(o.maxSize); n > 0 {
		if r := img.Bounds(); r.Dx() > int(n) || r.Dy() > int(n) {
			img = resize.Thumbnail(n, n, img, resize.Bilinear)
		}
	}

	rgba := flipRGBA(toRGBA(img))
	r := rgba.Bounds()
	return newTexture(ctx, rgba.Pix, r.Dx(), r.Dy())
}

// NewTextureRGBA uploads tightly packed RGBA bytes as given, without flipping.
func NewTextureRGBA(ctx Context, pix []byte, width, height int) (*Texture, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("gpu: texture dimensions %dx%d", width, height)
	}
	if n := 4 * width * height; len(pix) < n {
		return nil, fmt.Errorf("gpu: texture %dx%d needs %d bytes, have %d", width, height, n, len(pix))
	}
	return newTexture(ctx, pix, width, height)
}

func newTexture(ctx Context, pix []byte, width, height int) (*Texture, error) {
	obj, err := newObject(ctx, KindTexture, ctx.CreateTexture, ctx.DeleteTexture)
	if err != nil {
		return nil, err
	}
	tex := &Texture{object: obj}

	ctx.BindTexture(TEXTURE_2D, tex.handle)
	ctx.TexImage2D(TEXTURE_2D, 0, width, height, RGBA, UNSIGNED_BYTE, pix)
	ctx.TexParameteri(TEXTURE_2D, TEXTURE_WRAP_S, int(REPEAT))
	ctx.TexParameteri(TEXTURE_2D, TEXTURE_WRAP_T, int(REPEAT))
	ctx.TexParameteri(TEXTURE_2D, TEXTURE_MIN_FILTER, int(NEAREST))
	ctx.TexParameteri(TEXTURE_2D, TEXTURE_MAG_FILTER, int(NEAREST))
	ctx.GenerateMipmap(TEXTURE_2D)
	ctx.BindTexture(TEXTURE_2D, 0)
	return tex, nil
}

// Bind activates texture unit TEXTURE0+unit and binds tex to it.
func (tex *Texture) Bind(unit int) {
	tex.ctx.ActiveTexture(TEXTURE0 + Enum(unit))
	tex.ctx.BindTexture(TEXTURE_2D, tex.handle)
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) && rgba.Stride == 4*rgba.Rect.Dx() {
		return rgba
	}
	r := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, r.Min, draw.Src)
	return rgba
}

// flipRGBA returns a copy of src with row order reversed.
func flipRGBA(src *image.RGBA) *image.RGBA {
	r := src.Bounds()
	dst := image.NewRGBA(r)
	for y := 0; y < r.Dy(); y++ {
		s := src.Pix[y*src.Stride : y*src.Stride+4*r.Dx()]
		d := (r.Dy() - 1 - y) * dst.Stride
		copy(dst.Pix[d:d+4*r.Dx()], s)
	}
	return dst
}
