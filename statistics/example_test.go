package statistics_test

import (
	"fmt"

	"github.com/calder-lab/uncert/statistics"
)

// ExampleFromSample condenses repeated fall-time measurements into a
// single uncertain value, mean ± standard error of the mean.
func ExampleFromSample() {
	times := []float64{0.431, 0.603, 0.504, 0.581, 0.588, 0.644, 0.595, 0.534, 0.563, 0.578}

	u, err := statistics.FromSample(times)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(u.Round(1))
	// Output:
	// 0.56 +/- 0.02
}
