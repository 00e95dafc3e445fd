// Package vector provides the small fixed-size points the noise evaluators
// work with. Each type is a thin named view over the matching mgl64 vector so
// arithmetic stays in mathgl while the lattice code gets the extra helpers it
// needs (component sum, attenuation, floor).
package vector

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vector is implemented by Vec2, Vec3 and Vec4. The lattice kernel is written
// once against it.
type Vector[V any] interface {
	Add(V) V
	Sub(V) V
	Scale(float64) V
	Dot(V) float64
	Sum() float64
	Attenuation() float64
	Floor() V
}

type Vec2 mgl64.Vec2

type Vec3 mgl64.Vec3

type Vec4 mgl64.Vec4

// Splat2 returns a Vec2 with every component set to s.
func Splat2(s float64) Vec2 { return Vec2{s, s} }

// Splat3 returns a Vec3 with every component set to s.
func Splat3(s float64) Vec3 { return Vec3{s, s, s} }

// Splat4 returns a Vec4 with every component set to s.
func Splat4(s float64) Vec4 { return Vec4{s, s, s, s} }

func (v Vec2) Add(o Vec2) Vec2      { return Vec2(mgl64.Vec2(v).Add(mgl64.Vec2(o))) }
func (v Vec2) Sub(o Vec2) Vec2      { return Vec2(mgl64.Vec2(v).Sub(mgl64.Vec2(o))) }
func (v Vec2) Scale(s float64) Vec2 { return Vec2(mgl64.Vec2(v).Mul(s)) }
func (v Vec2) Dot(o Vec2) float64   { return mgl64.Vec2(v).Dot(mgl64.Vec2(o)) }
func (v Vec2) Sum() float64         { return v[0] + v[1] }

// Attenuation returns the squared length of v.
func (v Vec2) Attenuation() float64 { return mgl64.Vec2(v).LenSqr() }

// Floor rounds every component toward negative infinity.
func (v Vec2) Floor() Vec2 { return Vec2{math.Floor(v[0]), math.Floor(v[1])} }

func (v Vec3) Add(o Vec3) Vec3      { return Vec3(mgl64.Vec3(v).Add(mgl64.Vec3(o))) }
func (v Vec3) Sub(o Vec3) Vec3      { return Vec3(mgl64.Vec3(v).Sub(mgl64.Vec3(o))) }
func (v Vec3) Scale(s float64) Vec3 { return Vec3(mgl64.Vec3(v).Mul(s)) }
func (v Vec3) Dot(o Vec3) float64   { return mgl64.Vec3(v).Dot(mgl64.Vec3(o)) }
func (v Vec3) Sum() float64         { return v[0] + v[1] + v[2] }
func (v Vec3) Attenuation() float64 { return mgl64.Vec3(v).LenSqr() }

func (v Vec3) Floor() Vec3 {
	return Vec3{math.Floor(v[0]), math.Floor(v[1]), math.Floor(v[2])}
}

func (v Vec4) Add(o Vec4) Vec4      { return Vec4(mgl64.Vec4(v).Add(mgl64.Vec4(o))) }
func (v Vec4) Sub(o Vec4) Vec4      { return Vec4(mgl64.Vec4(v).Sub(mgl64.Vec4(o))) }
func (v Vec4) Scale(s float64) Vec4 { return Vec4(mgl64.Vec4(v).Mul(s)) }
func (v Vec4) Dot(o Vec4) float64   { return mgl64.Vec4(v).Dot(mgl64.Vec4(o)) }
func (v Vec4) Sum() float64         { return v[0] + v[1] + v[2] + v[3] }
func (v Vec4) Attenuation() float64 { return mgl64.Vec4(v).LenSqr() }

func (v Vec4) Floor() Vec4 {
	return Vec4{math.Floor(v[0]), math.Floor(v[1]), math.Floor(v[2]), math.Floor(v[3])}
}
