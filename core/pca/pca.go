// core/pca/pca.go
package pca

import "math"

// Result holds the leading principal components of a data matrix.
// Eigenvectors is row-major: component c occupies
// Eigenvectors[c*NFeatures : (c+1)*NFeatures].
type Result struct {
	Eigenvectors []float64
	Eigenvalues  []float64
	NComponents  int
	NFeatures    int
}

// PowerIteration extracts up to nComponents principal components of a
// row-major nSamples x nFeatures matrix without forming the covariance
// matrix, which keeps memory linear for wide inputs such as k-mer
// frequency tables. maxIter <= 0 defaults to 100, tol <= 0 to 1e-8.
// Inconsistent dimensions give a zero-value Result. Deterministic: the
// start vector is a fixed pseudo-random sequence, not RNG-seeded.
func PowerIteration(data []float64, nSamples, nFeatures, nComponents, maxIter int, tol float64) Result {
	if nSamples <= 0 || nFeatures <= 0 || len(data) != nSamples*nFeatures {
		return Result{NFeatures: nFeatures}
	}
	if maxIter <= 0 {
		maxIter = 100
	}
	if tol <= 0 {
		tol = 1e-8
	}
	nComp := nComponents
	if nComp > nSamples {
		nComp = nSamples
	}
	if nComp > nFeatures {
		nComp = nFeatures
	}
	if nComp < 0 {
		nComp = 0
	}

	// Center each feature.
	mean := make([]float64, nFeatures)
	for i := 0; i < nSamples; i++ {
		row := data[i*nFeatures:]
		for j := 0; j < nFeatures; j++ {
			mean[j] += row[j]
		}
	}
	for j := range mean {
		mean[j] /= float64(nSamples)
	}
	centered := make([]float64, len(data))
	for i := 0; i < nSamples; i++ {
		for j := 0; j < nFeatures; j++ {
			centered[i*nFeatures+j] = data[i*nFeatures+j] - mean[j]
		}
	}

	res := Result{
		Eigenvectors: make([]float64, 0, nComp*nFeatures),
		Eigenvalues:  make([]float64, 0, nComp),
		NComponents:  nComp,
		NFeatures:    nFeatures,
	}
	var previous [][]float64
	for c := 0; c < nComp; c++ {
		vec, val := powerIterate(centered, nSamples, nFeatures, previous, maxIter, tol)
		res.Eigenvectors = append(res.Eigenvectors, vec...)
		res.Eigenvalues = append(res.Eigenvalues, val)
		previous = append(previous, vec)
	}
	return res
}

func powerIterate(centered []float64, nSamples, nFeatures int, previous [][]float64, maxIter int, tol float64) ([]float64, float64) {
	v := make([]float64, nFeatures)
	for i := range v {
		v[i] = float64((i*7919+104729)%1000)/1000 - 0.5
	}
	for _, pc := range previous {
		deflate(v, pc)
	}
	normalize(v)

	eigenvalue := 0.0
	xv := make([]float64, nSamples)
	for iter := 0; iter < maxIter; iter++ {
		// X^T X v, computed as X^T (X v).
		for i := 0; i < nSamples; i++ {
			row := centered[i*nFeatures : (i+1)*nFeatures]
			sum := 0.0
			for j, rj := range row {
				sum += rj * v[j]
			}
			xv[i] = sum
		}
		xtxv := make([]float64, nFeatures)
		for i := 0; i < nSamples; i++ {
			row := centered[i*nFeatures : (i+1)*nFeatures]
			ui := xv[i]
			for j, rj := range row {
				xtxv[j] += rj * ui
			}
		}
		for _, pc := range previous {
			deflate(xtxv, pc)
		}
		eigenvalue = dot(v, xtxv)
		normalize(xtxv)

		diff := 0.0
		for i := range v {
			diff += math.Abs(v[i] - xtxv[i])
		}
		v = xtxv
		if diff < tol {
			break
		}
	}
	if nSamples > 1 {
		eigenvalue /= float64(nSamples - 1)
	}
	return v, eigenvalue
}

func deflate(v, u []float64) {
	p := dot(v, u)
	for i := range v {
		v[i] -= p * u[i]
	}
}

func normalize(v []float64) {
	norm := math.Sqrt(dot(v, v))
	if norm > 0 {
		for i := range v {
			v[i] /= norm
		}
	}
}

func dot(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}
