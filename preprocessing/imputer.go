package preprocessing

import (
	"math"
	"sort"
	"strconv"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/amesgo/core/model"
	"github.com/YuminosukeSato/amesgo/core/parallel"
	"github.com/YuminosukeSato/amesgo/pkg/errors"
)

// KNNImputer fills NaN cells with the mean of the k nearest training rows.
//
// Distance between rows is NaN-aware Euclidean: computed over the
// dimensions observed in both rows and rescaled by total/observed dimension
// count, so rows with many gaps are not artificially close. The neighbor
// pool is fixed at Fit time from the training matrix; Transform never
// recomputes it from the data being filled, which keeps test rows from
// influencing the fill statistics.
//
// A column with no observed value in the training matrix cannot be imputed
// and fails Fit with an ImputationError. A row that shares no observed
// dimension with any training row falls back to the training column mean.
type KNNImputer struct {
	model.BaseEstimator

	// NNeighbors is k, the number of donor rows averaged per fill.
	NNeighbors int

	train     *mat.Dense
	colMeans  []float64
	nFeatures int

	featureNames []string
}

// NewKNNImputer creates an imputer with the given neighbor count.
// Non-positive k defaults to 5.
func NewKNNImputer(k int) *KNNImputer {
	if k <= 0 {
		k = 5
	}
	return &KNNImputer{NNeighbors: k}
}

// SetFeatureNames attaches column names used in error messages. Optional;
// errors fall back to positional names.
func (im *KNNImputer) SetFeatureNames(names []string) {
	im.featureNames = names
}

func (im *KNNImputer) columnName(j int) string {
	if j < len(im.featureNames) {
		return im.featureNames[j]
	}
	return "column " + strconv.Itoa(j)
}

// Fit stores the training matrix as the neighbor pool and precomputes the
// per-column observed means.
func (im *KNNImputer) Fit(X mat.Matrix) error {
	r, c := X.Dims()
	if r == 0 || c == 0 {
		return errors.NewModelError("KNNImputer.Fit", "empty data", errors.ErrEmptyData)
	}

	im.train = mat.DenseCopyOf(X)
	im.nFeatures = c
	im.colMeans = make([]float64, c)

	for j := 0; j < c; j++ {
		sum := 0.0
		observed := 0
		for i := 0; i < r; i++ {
			v := im.train.At(i, j)
			if !math.IsNaN(v) {
				sum += v
				observed++
			}
		}
		if observed == 0 {
			im.Reset()
			return errors.NewImputationError(im.columnName(j), "no observed values in training data")
		}
		im.colMeans[j] = sum / float64(observed)
	}

	im.SetFitted()
	return nil
}

// Transform returns a copy of X with every NaN replaced.
func (im *KNNImputer) Transform(X mat.Matrix) (mat.Matrix, error) {
	if !im.IsFitted() {
		return nil, errors.NewNotFittedError("KNNImputer", "Transform")
	}

	r, c := X.Dims()
	if c != im.nFeatures {
		return nil, errors.NewDimensionError("KNNImputer.Transform", im.nFeatures, c, 1)
	}

	out := mat.DenseCopyOf(X)
	nTrain, _ := im.train.Dims()

	// Rows are independent, so fill them in parallel chunks.
	const parallelThreshold = 200
	parallel.ParallelizeWithThreshold(r, parallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			im.fillRow(out, i, nTrain)
		}
	})

	return out, nil
}

// FitTransform fits the neighbor pool on X and fills X itself.
func (im *KNNImputer) FitTransform(X mat.Matrix) (mat.Matrix, error) {
	if err := im.Fit(X); err != nil {
		return nil, err
	}
	return im.Transform(X)
}

// fillRow replaces the NaN cells of row i using the fitted neighbor pool.
func (im *KNNImputer) fillRow(out *mat.Dense, i, nTrain int) {
	row := out.RawRowView(i)

	missing := make([]int, 0)
	for j, v := range row {
		if math.IsNaN(v) {
			missing = append(missing, j)
		}
	}
	if len(missing) == 0 {
		return
	}

	// Distance from this row to every training row, sorted ascending.
	type neighbor struct {
		idx  int
		dist float64
	}
	neighbors := make([]neighbor, 0, nTrain)
	for t := 0; t < nTrain; t++ {
		d := nanEuclidean(row, im.train.RawRowView(t))
		if !math.IsInf(d, 1) {
			neighbors = append(neighbors, neighbor{idx: t, dist: d})
		}
	}
	sort.Slice(neighbors, func(a, b int) bool {
		if neighbors[a].dist != neighbors[b].dist {
			return neighbors[a].dist < neighbors[b].dist
		}
		return neighbors[a].idx < neighbors[b].idx
	})

	for _, j := range missing {
		sum := 0.0
		donors := 0
		for _, nb := range neighbors {
			v := im.train.At(nb.idx, j)
			if math.IsNaN(v) {
				continue
			}
			sum += v
			donors++
			if donors == im.NNeighbors {
				break
			}
		}
		if donors == 0 {
			out.Set(i, j, im.colMeans[j])
			continue
		}
		out.Set(i, j, sum/float64(donors))
	}
}

// nanEuclidean computes Euclidean distance over dimensions observed in both
// rows, rescaled by total/observed so sparse overlap does not shrink the
// distance. Returns +Inf when the rows share no observed dimension.
func nanEuclidean(a, b []float64) float64 {
	sum := 0.0
	present := 0
	for j := range a {
		if math.IsNaN(a[j]) || math.IsNaN(b[j]) {
			continue
		}
		diff := a[j] - b[j]
		sum += diff * diff
		present++
	}
	if present == 0 {
		return math.Inf(1)
	}
	return math.Sqrt(float64(len(a)) / float64(present) * sum)
}
