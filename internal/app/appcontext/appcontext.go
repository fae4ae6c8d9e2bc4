package appcontext

const (
	EnvWorker Env = iota
	EnvCLI
)

type Env int

func (e Env) String() string {
	switch e {
	case EnvWorker:
		return "worker"
	case EnvCLI:
		return "cli"
	default:
		return "unknown"
	}
}

type Ctx struct {
	Env Env
}

func Declare(env Env) Ctx {
	return Ctx{
		Env: env,
	}
}
