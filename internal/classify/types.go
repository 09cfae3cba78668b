package classify

// Labels is the fixed class set, in the order the model was trained on.
var Labels = []string{
	"Bele", "Chela", "Guchi", "Kachki", "Kata Phasa",
	"Mola", "Nama Chanda", "Pabda", "Puti", "Tengra",
}

// ImageSize is the square input dimension expected by the model.
const ImageSize = 224

// Method identifies which path produced a classification.
type Method string

const (
	MethodDL       Method = "dl"
	MethodFallback Method = "fallback"
)

// --- UseCase Inputs ---

type ClassifyInput struct {
	Path string
}

// --- UseCase Outputs ---

type ClassifyOutput struct {
	Label      string
	Confidence float64
	Method     Method
}
