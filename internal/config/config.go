package config

import (
    "fmt"
    "os"
    "path/filepath"

    "gopkg.in/yaml.v3"
)

// FileName is the optional per-experiment config file looked up in the
// source directory. Absent file means all defaults.
const FileName = "explog.yaml"

type Config struct {
    CodeDirName     string    `yaml:"code_dir"`
    ResultsDirName  string    `yaml:"results_dir"`
    CodePathsFile   string    `yaml:"codepaths_file"`
    DataPathsFile   string    `yaml:"datapaths_file"`
    EnvironmentFile string    `yaml:"environment_file"`
    OutputFile      string    `yaml:"output_file"`
    Database        string    `yaml:"database"`
    Entry           Entry     `yaml:"entry"`
    Scheduler       Scheduler `yaml:"scheduler"`
    Doctor          Doctor    `yaml:"doctor"`
}

type Entry struct {
    Script      string `yaml:"script"`      // interpreted entry file name
    Shell       string `yaml:"shell"`       // shell entry file name
    Interpreter string `yaml:"interpreter"` // binary used for the interpreted kind
    ShellBin    string `yaml:"shell_bin"`   // binary used for the shell kind
}

type Scheduler struct {
    JobIDVar string `yaml:"job_id_var"`
    NodeVar  string `yaml:"node_var"`
}

type Doctor struct {
    MinInterpreterVersion string `yaml:"min_interpreter_version"`
}

func Default() *Config {
    return &Config{
        CodeDirName:     "Code",
        ResultsDirName:  "Results",
        CodePathsFile:   "codepaths.txt",
        DataPathsFile:   "datapaths.txt",
        EnvironmentFile: "environment.txt",
        OutputFile:      "terminal_output.txt",
        Database:        filepath.Join(".explog", "runs.db"),
        Entry: Entry{
            Script:      "main.py",
            Shell:       "main.sh",
            Interpreter: "python3",
            ShellBin:    "bash",
        },
        Scheduler: Scheduler{
            JobIDVar: "SLURM_JOB_ID",
            NodeVar:  "SLURMD_NODENAME",
        },
    }
}

// Load reads explog.yaml from sourceDir if present, applying it on top of the
// defaults. A missing file is not an error.
func Load(sourceDir string) (*Config, error) {
    cfg := Default()
    b, err := os.ReadFile(filepath.Join(sourceDir, FileName))
    if err != nil {
        if os.IsNotExist(err) { return cfg, nil }
        return nil, err
    }
    if err := yaml.Unmarshal(b, cfg); err != nil {
        return nil, fmt.Errorf("parse config: %w", err)
    }
    return cfg, nil
}

// DatabasePath resolves the run-index database location against sourceDir.
func (c *Config) DatabasePath(sourceDir string) string {
    if filepath.IsAbs(c.Database) { return c.Database }
    return filepath.Join(sourceDir, c.Database)
}
