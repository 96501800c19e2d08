package primatives

type Number interface {
	int32 | float32 | float64
}

type Vector2[T Number] struct {
	X, Y T
}

type Vector3[T Number] struct {
	X, Y, Z T
}

type Rectangle[T Number] struct {
	Vector2[T]
	Width, Height T
}

// Flatten appends the components of each vector to dst in x, y, z order.
func Flatten[T Number](dst []T, vs ...Vector3[T]) []T {
	for _, v := range vs {
		dst = append(dst, v.X, v.Y, v.Z)
	}
	return dst
}
