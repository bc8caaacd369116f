package export_test

import (
	"fmt"

	"github.com/cwbudde/algo-sinelut/dsp/lut"
	"github.com/cwbudde/algo-sinelut/export"
)

func ExampleFormat_Array() {
	f := export.DefaultFormat()
	fmt.Println(f.Array(lut.Sine(4)))

	// Output:
	// [0.000000, 1.000000, 0.000000, -1.000000]
}

func ExampleFormat_CArrayQ15() {
	f := export.DefaultFormat()
	fmt.Println(f.CArrayQ15("SINE_LUT", lut.QuantizeQ15(lut.Sine(4))))

	// Output:
	// static const int16_t SINE_LUT[4] = {
	//     0, 32767, 0, -32767
	// };
}
