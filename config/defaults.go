package config

// BIP39EnglishURL is the upstream source of the base corpus.
const BIP39EnglishURL = "https://raw.githubusercontent.com/bitcoin/bips/master/bip-0039/english.txt"

// Default returns the default tool configuration.
func Default() *Config {
	return &Config{
		DataDir: DefaultDataDir(),
		Corpus: CorpusConfig{
			URL:       BIP39EnglishURL,
			CacheFile: "crypto_checksum_bip39.txt",
		},
		Vectors: VectorsConfig{
			Count:        1000,
			Seed:         42,
			Output:       "test-vectors/checksums.json",
			FullCoverage: true,
		},
		Log: LogConfig{
			Level: "info",
			JSON:  false,
		},
	}
}
