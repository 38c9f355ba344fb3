// Package models imports sphere placement and surface material from glTF
// documents.
package models

import (
	"fmt"
	"math"
	"path/filepath"

	"github.com/qmuntal/gltf"
	"github.com/taigrr/phong/pkg/render"
	"github.com/taigrr/phong/pkg/scene"
)

// Asset is what the tracer takes from a glTF document: a name, a material
// and the node's placement.
type Asset struct {
	Name        string
	NodeName    string
	Material    scene.Material
	Transform   scene.Transformation
	HasMaterial bool // False when the document defines no material
}

// GLTFLoader loads GLTF/GLB files into an Asset.
type GLTFLoader struct {
	// Base is the material glTF values are layered onto.
	Base scene.Material
	// UseRoughness derives shininess from the roughness factor.
	UseRoughness bool
}

// NewGLTFLoader creates a new GLTF loader with default options.
func NewGLTFLoader() *GLTFLoader {
	return &GLTFLoader{
		Base:         scene.DefaultMaterial(),
		UseRoughness: true,
	}
}

// LoadGLTF loads a .gltf or .glb file with the default loader.
func LoadGLTF(path string) (*Asset, error) {
	return NewGLTFLoader().Load(path)
}

// Load opens a GLTF or GLB file and extracts an Asset.
func (l *GLTFLoader) Load(path string) (*Asset, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}
	return l.FromDocument(filepath.Base(path), doc)
}

// FromDocument extracts an Asset from an already decoded document.
func (l *GLTFLoader) FromDocument(name string, doc *gltf.Document) (*Asset, error) {
	asset := &Asset{
		Name:      name,
		Material:  l.Base,
		Transform: scene.NewTransformation(),
	}

	node := pickNode(doc)
	if node != nil {
		asset.NodeName = node.Name
		t, err := nodeTransform(node)
		if err != nil {
			return nil, fmt.Errorf("node %q: %w", node.Name, err)
		}
		asset.Transform = t
	}

	if mat := pickMaterial(doc, node); mat != nil {
		asset.Material = l.applyMaterial(mat)
		asset.HasMaterial = true
	}

	return asset, nil
}

// pickNode returns the first node that references a mesh, falling back to
// the first node.
func pickNode(doc *gltf.Document) *gltf.Node {
	for _, n := range doc.Nodes {
		if n.Mesh != nil {
			return n
		}
	}
	if len(doc.Nodes) > 0 {
		return doc.Nodes[0]
	}
	return nil
}

// pickMaterial prefers the first material used by the node's mesh, then the
// document's first material.
func pickMaterial(doc *gltf.Document, node *gltf.Node) *gltf.Material {
	if node != nil && node.Mesh != nil && *node.Mesh < len(doc.Meshes) {
		for _, prim := range doc.Meshes[*node.Mesh].Primitives {
			if prim.Material != nil && *prim.Material < len(doc.Materials) {
				return doc.Materials[*prim.Material]
			}
		}
	}
	if len(doc.Materials) > 0 {
		return doc.Materials[0]
	}
	return nil
}

// nodeTransform composes translation × scale. Rotation and explicit matrices
// are not supported and are ignored.
func nodeTransform(n *gltf.Node) (scene.Transformation, error) {
	t := n.Translation
	s := n.Scale

	// A zero scale component is read as the glTF default of 1
	sx, sy, sz := scaleOrOne(float64(s[0])), scaleOrOne(float64(s[1])), scaleOrOne(float64(s[2]))

	tr, err := scene.NewTransformation().Translate(float64(t[0]), float64(t[1]), float64(t[2]))
	if err != nil {
		return scene.Transformation{}, err
	}
	return tr.Scale(sx, sy, sz)
}

func scaleOrOne(v float64) float64 {
	if v == 0 {
		return 1
	}
	return v
}

// applyMaterial layers a glTF PBR material onto the loader's base material.
func (l *GLTFLoader) applyMaterial(mat *gltf.Material) scene.Material {
	m := l.Base
	pbr := mat.PBRMetallicRoughness
	if pbr == nil {
		return m
	}

	if pbr.BaseColorFactor != nil {
		c := *pbr.BaseColorFactor
		m.Colour = render.NewColour(float64(c[0]), float64(c[1]), float64(c[2]))
	}
	if l.UseRoughness && pbr.RoughnessFactor != nil {
		m.Shininess = RoughnessToShininess(float64(*pbr.RoughnessFactor))
	}
	return m
}

// RoughnessToShininess maps a PBR roughness in [0, 1] to a Phong exponent
// using the Blinn approximation 2/α² − 2 with α = roughness². The result is
// at least 1; a roughness of 0 gives MaxShininess.
func RoughnessToShininess(roughness float64) float64 {
	alpha := roughness * roughness
	if alpha == 0 {
		return MaxShininess
	}
	return math.Min(MaxShininess, math.Max(1, 2/(alpha*alpha)-2))
}

// MaxShininess caps the exponent derived from a near-zero roughness.
const MaxShininess = 1000
